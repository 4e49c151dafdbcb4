package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without a toolkit the executor must fall back to simulation and still walk
// through the full state machine with plausible results.
func TestSimulatedExtraction(t *testing.T) {
	rec := newCallbackRecorder(t)
	e := NewExecutor(nil, fastReporter())
	e.SimulationDelay = 0

	report := e.Execute(context.Background(), Spec{
		ID:   "sim-1",
		Kind: KindExtraction,
		Config: map[string]any{
			"sourcePath":   "/data/city.gdb",
			"outputFolder": "/data/export",
		},
		CallbackURL: rec.server.URL,
	})

	require.Equal(t, StatusSuccess, report.Status)
	require.Contains(t, report.Result, "files")
	// Default item set when the job lists no feature classes.
	require.Len(t, report.Result["files"], 3)
	assert.Equal(t, "Parcels.shp", report.Result["files"][0]["name"])
	assert.Equal(t, 15420, report.Result["files"][0]["features"])

	var simulated bool
	for _, entry := range report.Logs {
		if entry.Type == SeverityWarning && entry.Message == "GIS toolkit not available - running in simulation mode" {
			simulated = true
		}
	}
	assert.True(t, simulated, "simulation mode must be announced in the job log")
}

func TestSimulatedConversionHonorsRequestedFeatureClasses(t *testing.T) {
	rec := newCallbackRecorder(t)
	e := NewExecutor(nil, fastReporter())
	e.SimulationDelay = 0

	report := e.Execute(context.Background(), Spec{
		ID:   "sim-2",
		Kind: KindConversion,
		Config: map[string]any{
			"sourceConnection": "/conn/source.sde",
			"targetConnection": "/conn/target.sde",
			"featureClasses":   []any{"Hydrants", "Zoning"},
		},
		CallbackURL: rec.server.URL,
	})

	require.Equal(t, StatusSuccess, report.Status)
	require.Len(t, report.Result["migrations"], 2)
	assert.Equal(t, "Hydrants", report.Result["migrations"][0]["name"])
	assert.Equal(t, 2150, report.Result["migrations"][0]["sourceCount"])
	assert.Equal(t, 2150, report.Result["migrations"][0]["targetCount"])
}

func TestSimulatedComparisonAll(t *testing.T) {
	rec := newCallbackRecorder(t)
	e := NewExecutor(nil, fastReporter())
	e.SimulationDelay = 0

	report := e.Execute(context.Background(), Spec{
		ID:   "sim-3",
		Kind: KindComparison,
		Config: map[string]any{
			"sourceConnection": "/conn/source.sde",
			"targetConnection": "/conn/target.sde",
			"comparisonType":   "all",
		},
		CallbackURL: rec.server.URL,
	})

	require.Equal(t, StatusSuccess, report.Status)
	require.Len(t, report.Result["comparisons"], 3)
	assert.Equal(t, "schema", report.Result["comparisons"][0]["aspect"])
	assert.Equal(t, "attributes", report.Result["comparisons"][1]["aspect"])
	assert.Equal(t, "spatial", report.Result["comparisons"][2]["aspect"])
	// Differences degrade to warnings, never to a failed job.
	assert.Equal(t, "warning", report.Result["comparisons"][0]["status"])
}

func TestSimulatedJobValidatesConfigLikeRealRunners(t *testing.T) {
	rec := newCallbackRecorder(t)
	e := NewExecutor(nil, fastReporter())
	e.SimulationDelay = 0

	report := e.Execute(context.Background(), Spec{
		ID:   "sim-4",
		Kind: KindComparison,
		Config: map[string]any{
			"targetConnection": "/conn/target.sde",
		},
		CallbackURL: rec.server.URL,
	})

	assert.Equal(t, StatusFailed, report.Status)
	assert.Nil(t, report.Result)
}

func TestSimulatedCountIsDeterministic(t *testing.T) {
	assert.Equal(t, 15420, simulatedCount("Parcels"))
	assert.Equal(t, simulatedCount("CustomLayer"), simulatedCount("CustomLayer"))
	assert.Greater(t, simulatedCount("CustomLayer"), 0)
	assert.Equal(t, "Point", simulatedShape("Hydrants"))
	assert.Equal(t, "Polygon", simulatedShape("Unknown"))
}

func TestComparisonConfigExpandsAspects(t *testing.T) {
	spec := Spec{Config: map[string]any{
		"sourceConnection": "a",
		"targetConnection": "b",
	}}

	_, _, aspects, err := comparisonConfig(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"schema"}, aspects, "comparison type defaults to schema")

	spec.Config["comparisonType"] = "all"
	_, _, aspects, err = comparisonConfig(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"schema", "attributes", "spatial"}, aspects)

	spec.Config["comparisonType"] = "topology"
	_, _, _, err = comparisonConfig(spec)
	assert.Error(t, err)
}
