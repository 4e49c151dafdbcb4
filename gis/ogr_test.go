package gis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Captured from `ogrinfo -json -so` against a file geodatabase, reduced to
// the fields geosink reads.
const ogrInfoFixture = `{
  "layers": [
    {
      "name": "Parcels",
      "featureCount": 15420,
      "geometryFields": [
        {
          "type": "Multi Polygon",
          "coordinateSystem": {
            "wkt": "GEOGCS[\"WGS 84\",DATUM[\"WGS_1984\",SPHEROID[\"WGS 84\",6378137,298.257223563]]]"
          }
        }
      ],
      "fields": [
        {"name": "OBJECTID", "type": "Integer", "width": 0},
        {"name": "OWNER_NAME", "type": "String", "width": 64}
      ]
    },
    {
      "name": "Owners",
      "featureCount": 14200,
      "geometryFields": [],
      "fields": [
        {"name": "OWNER_ID", "type": "Integer", "width": 0}
      ]
    }
  ]
}`

func TestOgrReportParsing(t *testing.T) {
	var report ogrReport
	require.NoError(t, json.Unmarshal([]byte(ogrInfoFixture), &report))
	require.Len(t, report.Layers, 2)

	parcels := report.Layers[0]
	assert.Equal(t, "Parcels", parcels.Name)
	assert.Equal(t, 15420, parcels.FeatureCount)
	assert.Equal(t, "Polygon", shapeType(parcels))
	assert.Equal(t, "WGS 84", spatialReference(parcels))
	require.Len(t, parcels.Fields, 2)
	assert.Equal(t, "OWNER_NAME", parcels.Fields[1].Name)
	assert.Equal(t, 64, parcels.Fields[1].Width)

	owners := report.Layers[1]
	assert.Equal(t, "Table", shapeType(owners))
	assert.Empty(t, spatialReference(owners))
}

func TestShapeTypeMapping(t *testing.T) {
	layerWith := func(geomType string) ogrLayer {
		var l ogrLayer
		require.NoError(t, json.Unmarshal([]byte(`{"geometryFields":[{"type":"`+geomType+`"}]}`), &l))
		return l
	}

	assert.Equal(t, "Point", shapeType(layerWith("Point")))
	assert.Equal(t, "Point", shapeType(layerWith("Multi Point")))
	assert.Equal(t, "Polyline", shapeType(layerWith("Line String")))
	assert.Equal(t, "Polyline", shapeType(layerWith("Multi Line String")))
	assert.Equal(t, "Polygon", shapeType(layerWith("Polygon")))
	assert.Equal(t, "Polygon", shapeType(layerWith("Multi Polygon")))
	assert.Equal(t, "Table", shapeType(layerWith("None")))
	assert.Equal(t, "Table", shapeType(ogrLayer{}))
}

func TestSpatialReferenceExtraction(t *testing.T) {
	layerWithWkt := func(wkt string) ogrLayer {
		raw, err := json.Marshal(map[string]any{
			"geometryFields": []map[string]any{
				{"type": "Polygon", "coordinateSystem": map[string]any{"wkt": wkt}},
			},
		})
		require.NoError(t, err)
		var l ogrLayer
		require.NoError(t, json.Unmarshal(raw, &l))
		return l
	}

	assert.Equal(t, "WGS 84", spatialReference(layerWithWkt(`GEOGCS["WGS 84",DATUM["WGS_1984"]]`)))
	assert.Equal(t, "ETRS89 / UTM zone 32N", spatialReference(layerWithWkt(`PROJCS["ETRS89 / UTM zone 32N",GEOGCS["ETRS89"]]`)))
	assert.Empty(t, spatialReference(layerWithWkt("")))
	assert.Empty(t, spatialReference(layerWithWkt("LOCAL_CS[unnamed]")))
}

func TestNewOGRDefaults(t *testing.T) {
	o := NewOGR("", "")
	assert.Equal(t, "ogrinfo", o.InfoBin)
	assert.Equal(t, "ogr2ogr", o.ConvertBin)

	o = NewOGR("/opt/gdal/bin/ogrinfo", "/opt/gdal/bin/ogr2ogr")
	assert.Equal(t, "/opt/gdal/bin/ogrinfo", o.InfoBin)
}

func TestSampleCatalogIsStable(t *testing.T) {
	catalog := SampleCatalog()
	require.NotEmpty(t, catalog.FeatureClasses)
	require.NotEmpty(t, catalog.Tables)

	names := map[string]FeatureClass{}
	for _, fc := range catalog.FeatureClasses {
		names[fc.Name] = fc
	}
	assert.Equal(t, 15420, names["Parcels"].FeatureCount)
	assert.Equal(t, "Polygon", names["Parcels"].Type)
	assert.Equal(t, "Polyline", names["Roads"].Type)
	assert.Equal(t, "Table", catalog.Tables[0].Type)
}
