package jobs

import (
	"context"
	"fmt"
	"os"

	"github.com/srad/geosink/gis"
)

// extractionRunner exports feature classes of a geodatabase to shapefiles,
// one work item per feature class.
type extractionRunner struct {
	tk     gis.Toolkit
	source string
	output string
}

func (r *extractionRunner) ResultKey() string {
	return "files"
}

func (r *extractionRunner) Enumerate(ctx context.Context, job *Job) ([]string, error) {
	source, output, featureClasses, err := extractionConfig(job.Spec)
	if err != nil {
		return nil, err
	}
	r.source = source
	r.output = output

	job.Log.Infof("Starting extraction from: %s", source)
	job.Log.Infof("Output folder: %s", output)

	if _, err := os.Stat(source); err != nil {
		return nil, &JobFault{Message: fmt.Sprintf("source not found: %s", source), Err: err}
	}
	if err := os.MkdirAll(output, 0755); err != nil {
		return nil, &JobFault{Message: fmt.Sprintf("cannot create output folder %s", output), Err: err}
	}

	if len(featureClasses) == 0 {
		layers, err := r.tk.ListLayers(ctx, source)
		if err != nil {
			return nil, &JobFault{Message: "cannot list feature classes", Err: err}
		}
		for _, layer := range layers {
			featureClasses = append(featureClasses, layer.Name)
		}
		job.Log.Infof("No feature classes specified, extracting all %d found", len(featureClasses))
	} else {
		job.Log.Infof("Feature classes to extract: %d", len(featureClasses))
	}

	return featureClasses, nil
}

func (r *extractionRunner) RunItem(ctx context.Context, job *Job, key string) ItemResult {
	job.Log.Infof("Extracting: %s", key)

	info, err := r.tk.DescribeLayer(ctx, r.source, key)
	if err != nil {
		return extractionError(job, key, err)
	}

	path, err := r.tk.ExportShapefile(ctx, r.source, key, r.output)
	if err != nil {
		return extractionError(job, key, err)
	}

	var size int64
	if stat, err := os.Stat(path); err == nil {
		size = stat.Size()
	}

	job.Log.Successf("%s: %d features extracted", key, info.FeatureCount)

	return ItemResult{
		Key:     key,
		Outcome: OutcomeSuccess,
		Detail: map[string]any{
			"name":     key + ".shp",
			"type":     info.GeometryType,
			"features": info.FeatureCount,
			"size":     size,
			"status":   string(OutcomeSuccess),
		},
	}
}

func extractionError(job *Job, key string, err error) ItemResult {
	job.Log.Errorf("Failed to extract %s: %s", key, err)
	return ItemResult{
		Key:     key,
		Outcome: OutcomeError,
		Detail: map[string]any{
			"name":    key,
			"status":  string(OutcomeError),
			"message": err.Error(),
		},
	}
}
