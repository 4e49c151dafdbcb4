package jobs

import (
	"context"
	"time"
)

// simulationRunner stands in for the real runners when the GIS toolkit is
// not installed. It exercises the identical executor state machine and
// callback checkpoints, fabricates a fixed set of work items when the job
// does not list its own, and reports plausible but synthetic results. A
// bounded per-item delay preserves the long-running-job semantics callers
// rely on.
type simulationRunner struct {
	kind  Kind
	delay time.Duration
}

// Synthetic catalog shared by all simulated jobs.
var simulatedCounts = map[string]int{
	"Parcels":   15420,
	"Roads":     8350,
	"Buildings": 12800,
	"Utilities": 4521,
	"Hydrants":  2150,
	"Zoning":    2345,
}

var simulatedShapes = map[string]string{
	"Parcels":   "Polygon",
	"Roads":     "Polyline",
	"Buildings": "Polygon",
	"Utilities": "Polyline",
	"Hydrants":  "Point",
	"Zoning":    "Polygon",
}

func simulatedCount(name string) int {
	if count, ok := simulatedCounts[name]; ok {
		return count
	}
	// Deterministic fallback for caller-supplied names.
	count := 0
	for _, c := range name {
		count += int(c)
	}
	return count * 10
}

func simulatedShape(name string) string {
	if shape, ok := simulatedShapes[name]; ok {
		return shape
	}
	return "Polygon"
}

func (r *simulationRunner) ResultKey() string {
	switch r.kind {
	case KindConversion:
		return "migrations"
	case KindComparison:
		return "comparisons"
	}
	return "files"
}

func (r *simulationRunner) Enumerate(_ context.Context, job *Job) ([]string, error) {
	// Same config contract as the real runners: a bad config is a job-level
	// fault in simulation mode too.
	switch r.kind {
	case KindExtraction:
		source, output, featureClasses, err := extractionConfig(job.Spec)
		if err != nil {
			return nil, err
		}
		job.Log.Warningf("GIS toolkit not available - running in simulation mode")
		job.Log.Infof("Starting extraction from: %s", source)
		job.Log.Infof("Output folder: %s", output)
		if len(featureClasses) == 0 {
			featureClasses = []string{"Parcels", "Roads", "Buildings"}
			job.Log.Infof("No feature classes specified, extracting all %d found", len(featureClasses))
		}
		return featureClasses, nil

	case KindConversion:
		source, target, featureClasses, truncate, err := conversionConfig(job.Spec)
		if err != nil {
			return nil, err
		}
		job.Log.Warningf("GIS toolkit not available - running in simulation mode")
		job.Log.Infof("Source: %s", source)
		job.Log.Infof("Target: %s", target)
		job.Log.Infof("Truncate before load: %t", truncate)
		if len(featureClasses) == 0 {
			featureClasses = []string{"Parcels", "Roads", "Utilities"}
			job.Log.Infof("No feature classes specified, migrating all %d found", len(featureClasses))
		}
		return featureClasses, nil

	case KindComparison:
		source, target, aspects, err := comparisonConfig(job.Spec)
		if err != nil {
			return nil, err
		}
		job.Log.Warningf("GIS toolkit not available - running in simulation mode")
		job.Log.Infof("Source: %s", source)
		job.Log.Infof("Target: %s", target)
		return aspects, nil
	}

	return nil, faultf("unknown job type %q", r.kind)
}

func (r *simulationRunner) RunItem(ctx context.Context, job *Job, key string) ItemResult {
	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
		}
	}

	switch r.kind {
	case KindConversion:
		count := simulatedCount(key)
		job.Log.Infof("[simulated] Migrating: %s", key)
		job.Log.Successf("[simulated] %s: %d -> %d rows", key, count, count)
		return ItemResult{
			Key:     key,
			Outcome: OutcomeSuccess,
			Detail: map[string]any{
				"name":        key,
				"sourceCount": count,
				"targetCount": count,
				"status":      string(OutcomeSuccess),
			},
		}

	case KindComparison:
		return r.simulateComparison(job, key)
	}

	count := simulatedCount(key)
	job.Log.Infof("[simulated] Extracting: %s", key)
	job.Log.Successf("[simulated] %s: %d features extracted", key, count)
	return ItemResult{
		Key:     key,
		Outcome: OutcomeSuccess,
		Detail: map[string]any{
			"name":     key + ".shp",
			"type":     simulatedShape(key),
			"features": count,
			"size":     int64(count) * 64,
			"status":   string(OutcomeSuccess),
		},
	}
}

func (r *simulationRunner) simulateComparison(job *Job, aspect string) ItemResult {
	switch aspect {
	case aspectAttributes:
		job.Log.Infof("[simulated] Comparing attribute counts...")
		job.Log.Warningf("[simulated] Feature count mismatch: source=15420, target=15418")
		return ItemResult{
			Key:     aspectAttributes,
			Outcome: OutcomeWarning,
			Detail: map[string]any{
				"aspect":      aspectAttributes,
				"status":      string(OutcomeWarning),
				"sourceCount": 15420,
				"targetCount": 15418,
				"match":       false,
			},
		}

	case aspectSpatial:
		job.Log.Infof("[simulated] Comparing spatial properties...")
		job.Log.Successf("[simulated] Spatial properties match")
		return ItemResult{
			Key:     aspectSpatial,
			Outcome: OutcomeSuccess,
			Detail: map[string]any{
				"aspect":                 aspectSpatial,
				"status":                 string(OutcomeSuccess),
				"sourceType":             "Polygon",
				"targetType":             "Polygon",
				"sourceSpatialReference": "WGS 84",
				"targetSpatialReference": "WGS 84",
				"match":                  true,
			},
		}
	}

	job.Log.Infof("[simulated] Comparing schemas...")
	job.Log.Warningf("[simulated] Field 'OWNER_NAME' missing in target")
	return ItemResult{
		Key:     aspectSchema,
		Outcome: OutcomeWarning,
		Detail: map[string]any{
			"aspect":  aspectSchema,
			"status":  string(OutcomeWarning),
			"matched": 2,
			"total":   3,
			"fields": []map[string]any{
				{"field": "OBJECTID", "sourceValue": "Integer", "targetValue": "Integer", "match": true},
				{"field": "SHAPE_Area", "sourceValue": "Real", "targetValue": "Real", "match": true},
				{"field": "OWNER_NAME", "sourceValue": "String(64)", "targetValue": "N/A", "match": false, "difference": "Missing in target"},
			},
		},
	}
}
