package jobs

import (
	"context"
)

// Runner executes the work items of one job kind. Enumerate validates the
// config and expands it into work item keys; any error it returns is a
// job-level fault. RunItem performs one item and must convert every
// underlying failure into an ItemResult with outcome "error" instead of
// returning it; one item's failure never aborts the job.
type Runner interface {
	// ResultKey names the kind-specific array in the terminal callback
	// payload, e.g. "files" for extraction.
	ResultKey() string

	Enumerate(ctx context.Context, job *Job) ([]string, error)

	RunItem(ctx context.Context, job *Job, key string) ItemResult
}

// Comparison work items are aspects, not datasets.
const (
	aspectSchema     = "schema"
	aspectAttributes = "attributes"
	aspectSpatial    = "spatial"
)

// extractionConfig validates the extraction job config. Feature classes may
// be empty, in which case the runner enumerates the source workspace itself.
func extractionConfig(spec Spec) (source, output string, featureClasses []string, err error) {
	source = spec.ConfigString("sourcePath")
	output = spec.ConfigString("outputFolder")
	if source == "" || output == "" {
		return "", "", nil, faultf("source path and output folder are required")
	}
	return source, output, spec.ConfigStrings("featureClasses"), nil
}

func conversionConfig(spec Spec) (source, target string, featureClasses []string, truncate bool, err error) {
	source = spec.ConfigString("sourceConnection")
	target = spec.ConfigString("targetConnection")
	if source == "" || target == "" {
		return "", "", nil, false, faultf("source and target connections are required")
	}
	return source, target, spec.ConfigStrings("featureClasses"), spec.ConfigBool("truncateFirst"), nil
}

// comparisonConfig expands comparisonType into the list of aspects to run.
func comparisonConfig(spec Spec) (source, target string, aspects []string, err error) {
	source = spec.ConfigString("sourceConnection")
	target = spec.ConfigString("targetConnection")
	if source == "" || target == "" {
		return "", "", nil, faultf("source and target connections are required")
	}

	comparisonType := spec.ConfigString("comparisonType")
	if comparisonType == "" {
		comparisonType = aspectSchema
	}

	switch comparisonType {
	case aspectSchema, aspectAttributes, aspectSpatial:
		aspects = []string{comparisonType}
	case "all":
		aspects = []string{aspectSchema, aspectAttributes, aspectSpatial}
	default:
		return "", "", nil, faultf("unknown comparison type %q", comparisonType)
	}

	return source, target, aspects, nil
}
