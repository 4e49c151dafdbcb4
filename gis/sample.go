package gis

// Catalog is the feature class listing of one datasource.
type Catalog struct {
	FeatureClasses []FeatureClass `json:"featureClasses"`
	Tables         []FeatureClass `json:"tables"`
}

// SampleCatalog is the deterministic listing served when the toolkit is not
// installed, so the UI stays usable against a degraded backend.
func SampleCatalog() *Catalog {
	return &Catalog{
		FeatureClasses: []FeatureClass{
			{Name: "Parcels", Type: "Polygon", FeatureCount: 15420, SpatialReference: "WGS 84"},
			{Name: "Roads", Type: "Polyline", FeatureCount: 8350, SpatialReference: "WGS 84"},
			{Name: "Buildings", Type: "Polygon", FeatureCount: 12800, SpatialReference: "WGS 84"},
			{Name: "Hydrants", Type: "Point", FeatureCount: 2150, SpatialReference: "WGS 84"},
		},
		Tables: []FeatureClass{
			{Name: "Owners", Type: "Table", FeatureCount: 14200},
			{Name: "Permits", Type: "Table", FeatureCount: 5600},
		},
	}
}
