package gis

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/srad/geosink/helpers"
)

// OGR drives the GDAL/OGR command line tools. The binaries are slow,
// blocking and keep their own connection state, so every method runs one
// process to completion per call.
type OGR struct {
	InfoBin    string
	ConvertBin string
}

func NewOGR(infoBin, convertBin string) *OGR {
	if infoBin == "" {
		infoBin = "ogrinfo"
	}
	if convertBin == "" {
		convertBin = "ogr2ogr"
	}
	return &OGR{InfoBin: infoBin, ConvertBin: convertBin}
}

func (o *OGR) Available() bool {
	if _, err := exec.LookPath(o.InfoBin); err != nil {
		return false
	}
	if _, err := exec.LookPath(o.ConvertBin); err != nil {
		return false
	}
	return true
}

// ogrinfo -json output, reduced to the parts geosink reads.
type ogrReport struct {
	Layers []ogrLayer `json:"layers"`
}

type ogrLayer struct {
	Name           string `json:"name"`
	FeatureCount   int    `json:"featureCount"`
	GeometryFields []struct {
		Type             string `json:"type"`
		CoordinateSystem struct {
			Wkt string `json:"wkt"`
		} `json:"coordinateSystem"`
	} `json:"geometryFields"`
	Fields []struct {
		Name  string `json:"name"`
		Type  string `json:"type"`
		Width int    `json:"width"`
	} `json:"fields"`
}

func (o *OGR) inspect(ctx context.Context, datasource, layer string) (*ogrReport, error) {
	args := []string{"-json", "-so", datasource}
	if layer != "" {
		args = append(args, layer)
	}

	out, err := helpers.ExecSync(ctx, o.InfoBin, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", datasource, err)
	}

	report := &ogrReport{}
	if err := json.Unmarshal(out, report); err != nil {
		return nil, fmt.Errorf("unexpected %s output for %s: %w", o.InfoBin, datasource, err)
	}

	return report, nil
}

func (o *OGR) ListLayers(ctx context.Context, datasource string) ([]FeatureClass, error) {
	report, err := o.inspect(ctx, datasource, "")
	if err != nil {
		return nil, err
	}

	layers := make([]FeatureClass, 0, len(report.Layers))
	for _, l := range report.Layers {
		layers = append(layers, FeatureClass{
			Name:             l.Name,
			Type:             shapeType(l),
			FeatureCount:     l.FeatureCount,
			SpatialReference: spatialReference(l),
		})
	}
	return layers, nil
}

func (o *OGR) DescribeLayer(ctx context.Context, datasource, layer string) (*LayerInfo, error) {
	report, err := o.inspect(ctx, datasource, layer)
	if err != nil {
		return nil, err
	}
	if len(report.Layers) == 0 {
		return nil, fmt.Errorf("no layer %q in %s", layer, datasource)
	}

	l := report.Layers[0]
	info := &LayerInfo{
		Name:             l.Name,
		GeometryType:     shapeType(l),
		FeatureCount:     l.FeatureCount,
		SpatialReference: spatialReference(l),
	}
	for _, f := range l.Fields {
		info.Fields = append(info.Fields, Field{Name: f.Name, Type: f.Type, Width: f.Width})
	}
	return info, nil
}

func (o *OGR) CountFeatures(ctx context.Context, datasource, layer string) (int, error) {
	info, err := o.DescribeLayer(ctx, datasource, layer)
	if err != nil {
		return 0, err
	}
	return info.FeatureCount, nil
}

func (o *OGR) ExportShapefile(ctx context.Context, datasource, layer, outputFolder string) (string, error) {
	if _, err := helpers.ExecSync(ctx, o.ConvertBin, "-f", "ESRI Shapefile", outputFolder, datasource, layer); err != nil {
		return "", fmt.Errorf("failed to export %s: %w", layer, err)
	}
	return filepath.Join(outputFolder, layer+".shp"), nil
}

func (o *OGR) CopyLayer(ctx context.Context, source, target, layer string, truncate bool) error {
	args := []string{"-update"}
	if truncate {
		args = append(args, "-overwrite")
	} else {
		args = append(args, "-append")
	}
	args = append(args, target, source, layer)

	if _, err := helpers.ExecSync(ctx, o.ConvertBin, args...); err != nil {
		return fmt.Errorf("failed to copy %s: %w", layer, err)
	}
	return nil
}

// shapeType maps OGR geometry names onto the Point/Polyline/Polygon naming
// used throughout the API. Layers without geometry are tables.
func shapeType(l ogrLayer) string {
	if len(l.GeometryFields) == 0 {
		return "Table"
	}

	t := strings.ReplaceAll(strings.TrimPrefix(l.GeometryFields[0].Type, "Multi "), " ", "")
	switch t {
	case "Point", "MultiPoint":
		return "Point"
	case "LineString", "MultiLineString":
		return "Polyline"
	case "Polygon", "MultiPolygon":
		return "Polygon"
	case "", "None":
		return "Table"
	}
	return t
}

func spatialReference(l ogrLayer) string {
	if len(l.GeometryFields) == 0 {
		return ""
	}

	wkt := l.GeometryFields[0].CoordinateSystem.Wkt
	// The SRS name is the first quoted token of the WKT, e.g.
	// GEOGCS["WGS 84", ...].
	start := strings.Index(wkt, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(wkt[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return wkt[start+1 : start+1+end]
}
