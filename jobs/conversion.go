package jobs

import (
	"context"

	"github.com/srad/geosink/gis"
)

// conversionRunner migrates feature classes between two enterprise
// geodatabase connections, one work item per feature class.
type conversionRunner struct {
	tk       gis.Toolkit
	source   string
	target   string
	truncate bool
}

func (r *conversionRunner) ResultKey() string {
	return "migrations"
}

func (r *conversionRunner) Enumerate(ctx context.Context, job *Job) ([]string, error) {
	source, target, featureClasses, truncate, err := conversionConfig(job.Spec)
	if err != nil {
		return nil, err
	}
	r.source = source
	r.target = target
	r.truncate = truncate

	job.Log.Infof("Source: %s", source)
	job.Log.Infof("Target: %s", target)
	job.Log.Infof("Truncate before load: %t", truncate)

	if len(featureClasses) == 0 {
		layers, err := r.tk.ListLayers(ctx, source)
		if err != nil {
			return nil, &JobFault{Message: "cannot open source connection", Err: err}
		}
		for _, layer := range layers {
			featureClasses = append(featureClasses, layer.Name)
		}
		job.Log.Infof("No feature classes specified, migrating all %d found", len(featureClasses))
	} else {
		job.Log.Infof("Feature classes to migrate: %d", len(featureClasses))
	}

	return featureClasses, nil
}

func (r *conversionRunner) RunItem(ctx context.Context, job *Job, key string) ItemResult {
	job.Log.Infof("Migrating: %s", key)

	sourceCount, err := r.tk.CountFeatures(ctx, r.source, key)
	if err != nil {
		return conversionError(job, key, err)
	}

	if r.truncate {
		job.Log.Infof("Truncating target before load: %s", key)
	}
	if err := r.tk.CopyLayer(ctx, r.source, r.target, key, r.truncate); err != nil {
		return conversionError(job, key, err)
	}

	targetCount, err := r.tk.CountFeatures(ctx, r.target, key)
	if err != nil {
		return conversionError(job, key, err)
	}

	// A count mismatch after migration is reported as a warning, never as a
	// failure; callers that need strict correctness reconcile separately.
	outcome := OutcomeSuccess
	if sourceCount != targetCount {
		outcome = OutcomeWarning
		job.Log.Warningf("%s: %d -> %d rows", key, sourceCount, targetCount)
	} else {
		job.Log.Successf("%s: %d -> %d rows", key, sourceCount, targetCount)
	}

	return ItemResult{
		Key:     key,
		Outcome: outcome,
		Detail: map[string]any{
			"name":        key,
			"sourceCount": sourceCount,
			"targetCount": targetCount,
			"status":      string(outcome),
		},
	}
}

func conversionError(job *Job, key string, err error) ItemResult {
	job.Log.Errorf("Failed to migrate %s: %s", key, err)
	return ItemResult{
		Key:     key,
		Outcome: OutcomeError,
		Detail: map[string]any{
			"name":        key,
			"sourceCount": 0,
			"targetCount": 0,
			"status":      string(OutcomeError),
			"message":     err.Error(),
		},
	}
}
