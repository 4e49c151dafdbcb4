package jobs

import (
	"context"
	"fmt"

	"github.com/srad/geosink/gis"
)

// comparisonRunner compares two feature classes. Its work items are the
// requested comparison aspects (schema, attributes, spatial), not datasets;
// both sides are described once up front so an unreachable connection is a
// job-level fault instead of three identical item errors.
type comparisonRunner struct {
	tk         gis.Toolkit
	source     string
	target     string
	sourceInfo *gis.LayerInfo
	targetInfo *gis.LayerInfo
}

func (r *comparisonRunner) ResultKey() string {
	return "comparisons"
}

func (r *comparisonRunner) Enumerate(ctx context.Context, job *Job) ([]string, error) {
	source, target, aspects, err := comparisonConfig(job.Spec)
	if err != nil {
		return nil, err
	}
	r.source = source
	r.target = target

	job.Log.Infof("Source: %s", source)
	job.Log.Infof("Target: %s", target)

	if r.sourceInfo, err = r.tk.DescribeLayer(ctx, source, ""); err != nil {
		return nil, &JobFault{Message: fmt.Sprintf("source feature class not readable: %s", source), Err: err}
	}
	if r.targetInfo, err = r.tk.DescribeLayer(ctx, target, ""); err != nil {
		return nil, &JobFault{Message: fmt.Sprintf("target feature class not readable: %s", target), Err: err}
	}

	return aspects, nil
}

func (r *comparisonRunner) RunItem(ctx context.Context, job *Job, key string) ItemResult {
	switch key {
	case aspectSchema:
		return r.compareSchema(job)
	case aspectAttributes:
		return r.compareAttributes(job)
	case aspectSpatial:
		return r.compareSpatial(job)
	}

	job.Log.Errorf("Unknown comparison aspect: %s", key)
	return ItemResult{
		Key:     key,
		Outcome: OutcomeError,
		Detail:  map[string]any{"aspect": key, "status": string(OutcomeError), "message": "unknown comparison aspect"},
	}
}

func (r *comparisonRunner) compareSchema(job *Job) ItemResult {
	job.Log.Infof("Comparing schemas...")

	sourceFields := fieldIndex(r.sourceInfo.Fields)
	targetFields := fieldIndex(r.targetInfo.Fields)

	var records []map[string]any
	matched := 0

	// Source-side fields first, in declaration order, then target-only ones.
	for _, f := range r.sourceInfo.Fields {
		tf, ok := targetFields[f.Name]
		if !ok {
			records = append(records, fieldRecord(f.Name, fieldType(f), "N/A", "Missing in target"))
			job.Log.Warningf("Field '%s' missing in target", f.Name)
			continue
		}
		if fieldType(f) != fieldType(tf) {
			records = append(records, fieldRecord(f.Name, fieldType(f), fieldType(tf), "Type differs"))
			job.Log.Warningf("Field '%s' type mismatch: %s vs %s", f.Name, fieldType(f), fieldType(tf))
			continue
		}
		matched++
		records = append(records, fieldRecord(f.Name, fieldType(f), fieldType(tf), ""))
	}
	for _, f := range r.targetInfo.Fields {
		if _, ok := sourceFields[f.Name]; !ok {
			records = append(records, fieldRecord(f.Name, "N/A", fieldType(f), "Missing in source"))
			job.Log.Warningf("Field '%s' missing in source", f.Name)
		}
	}

	outcome := OutcomeSuccess
	if matched < len(records) {
		outcome = OutcomeWarning
	}
	job.Log.Successf("Schema: %d/%d fields match", matched, len(records))

	return ItemResult{
		Key:     aspectSchema,
		Outcome: outcome,
		Detail: map[string]any{
			"aspect":  aspectSchema,
			"status":  string(outcome),
			"matched": matched,
			"total":   len(records),
			"fields":  records,
		},
	}
}

func (r *comparisonRunner) compareAttributes(job *Job) ItemResult {
	job.Log.Infof("Comparing attribute counts...")

	sourceCount := r.sourceInfo.FeatureCount
	targetCount := r.targetInfo.FeatureCount

	outcome := OutcomeSuccess
	if sourceCount != targetCount {
		outcome = OutcomeWarning
		diff := targetCount - sourceCount
		sign := ""
		if diff > 0 {
			sign = "+"
		}
		job.Log.Warningf("Feature count mismatch (%s%d)", sign, diff)
	} else {
		job.Log.Successf("Feature counts match: %d", sourceCount)
	}

	return ItemResult{
		Key:     aspectAttributes,
		Outcome: outcome,
		Detail: map[string]any{
			"aspect":      aspectAttributes,
			"status":      string(outcome),
			"sourceCount": sourceCount,
			"targetCount": targetCount,
			"match":       sourceCount == targetCount,
		},
	}
}

func (r *comparisonRunner) compareSpatial(job *Job) ItemResult {
	job.Log.Infof("Comparing spatial properties...")

	match := true
	if r.sourceInfo.GeometryType != r.targetInfo.GeometryType {
		match = false
		job.Log.Warningf("Shape type mismatch: %s vs %s", r.sourceInfo.GeometryType, r.targetInfo.GeometryType)
	}
	if r.sourceInfo.SpatialReference != r.targetInfo.SpatialReference {
		match = false
		job.Log.Warningf("Spatial reference mismatch: %s vs %s", r.sourceInfo.SpatialReference, r.targetInfo.SpatialReference)
	}

	outcome := OutcomeSuccess
	if !match {
		outcome = OutcomeWarning
	} else {
		job.Log.Successf("Spatial properties match")
	}

	return ItemResult{
		Key:     aspectSpatial,
		Outcome: outcome,
		Detail: map[string]any{
			"aspect":                 aspectSpatial,
			"status":                 string(outcome),
			"sourceType":             r.sourceInfo.GeometryType,
			"targetType":             r.targetInfo.GeometryType,
			"sourceSpatialReference": r.sourceInfo.SpatialReference,
			"targetSpatialReference": r.targetInfo.SpatialReference,
			"match":                  match,
		},
	}
}

func fieldIndex(fields []gis.Field) map[string]gis.Field {
	index := make(map[string]gis.Field, len(fields))
	for _, f := range fields {
		index[f.Name] = f
	}
	return index
}

func fieldType(f gis.Field) string {
	if f.Width > 0 {
		return fmt.Sprintf("%s(%d)", f.Type, f.Width)
	}
	return f.Type
}

func fieldRecord(name, sourceValue, targetValue, difference string) map[string]any {
	record := map[string]any{
		"field":       name,
		"sourceValue": sourceValue,
		"targetValue": targetValue,
		"match":       difference == "",
	}
	if difference != "" {
		record["difference"] = difference
	}
	return record
}
