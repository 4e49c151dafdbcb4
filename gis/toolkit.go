package gis

import (
	"context"
)

// FeatureClass is one spatial layer of a datasource. Type follows the
// Point/Polyline/Polygon naming GIS users expect; non-spatial layers report
// "Table".
type FeatureClass struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	FeatureCount     int    `json:"featureCount"`
	SpatialReference string `json:"spatialReference,omitempty"`
}

type Field struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Width int    `json:"width,omitempty"`
}

// LayerInfo is the full description of one layer.
type LayerInfo struct {
	Name             string
	GeometryType     string
	FeatureCount     int
	SpatialReference string
	Fields           []Field
}

// Toolkit is the boundary to the external GIS engine. Calls may block
// arbitrarily long and are not safely reentrant per datasource connection,
// which is why jobs run items sequentially on one worker.
//
// Available is the capability probe: when it reports false, the job engine
// switches to its simulation path without touching any of the other methods.
type Toolkit interface {
	Available() bool

	// ListLayers enumerates all layers of a datasource, tables included.
	ListLayers(ctx context.Context, datasource string) ([]FeatureClass, error)

	// DescribeLayer returns schema and spatial properties of one layer.
	// An empty layer name selects the datasource's default layer.
	DescribeLayer(ctx context.Context, datasource, layer string) (*LayerInfo, error)

	CountFeatures(ctx context.Context, datasource, layer string) (int, error)

	// ExportShapefile writes one layer as a shapefile into outputFolder and
	// returns the path of the created file.
	ExportShapefile(ctx context.Context, datasource, layer, outputFolder string) (string, error)

	// CopyLayer copies one layer between datasources. With truncate the
	// target layer is rebuilt, otherwise rows are appended.
	CopyLayer(ctx context.Context, source, target, layer string, truncate bool) error
}
