package jobs

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/srad/geosink/gis"
)

// Executor runs one job to its terminal state. Per job the status moves
// accepted -> running -> success|failed, each status reported at most once,
// the terminal one exactly once. Partial item failures leave the job
// successful; only a job-level fault fails it.
type Executor struct {
	Toolkit  gis.Toolkit
	Reporter *Reporter
	Events   EventSink

	// SimulationDelay is the artificial per-item pause of simulated jobs.
	SimulationDelay time.Duration

	// Strategy selection, overridable in tests.
	selectRunner func(Spec) Runner
}

func NewExecutor(toolkit gis.Toolkit, reporter *Reporter) *Executor {
	e := &Executor{
		Toolkit:         toolkit,
		Reporter:        reporter,
		Events:          noopSink{},
		SimulationDelay: 500 * time.Millisecond,
	}
	e.selectRunner = e.runnerFor
	return e
}

// runnerFor picks the runner once per job: the kind's real runner, or the
// simulation variant when the toolkit probe fails. Only the runner differs;
// state machine and reporting are shared.
func (e *Executor) runnerFor(spec Spec) Runner {
	if e.Toolkit == nil || !e.Toolkit.Available() {
		return &simulationRunner{kind: spec.Kind, delay: e.SimulationDelay}
	}

	switch spec.Kind {
	case KindConversion:
		return &conversionRunner{tk: e.Toolkit}
	case KindComparison:
		return &comparisonRunner{tk: e.Toolkit}
	default:
		return &extractionRunner{tk: e.Toolkit}
	}
}

// Execute runs the job to completion and returns the terminal report that
// was delivered to the callback address.
func (e *Executor) Execute(ctx context.Context, spec Spec) Report {
	job := &Job{Spec: spec, Log: &JobLog{}}
	runner := e.selectRunner(spec)

	log.Infof("[Executor] Job %s (%s) started", spec.ID, spec.Kind)

	items, err := runner.Enumerate(ctx, job)
	if err != nil {
		job.Log.Errorf("%s", err)
		return e.finish(ctx, job, runner, nil, StatusFailed)
	}

	// Running checkpoint, before the first item begins.
	e.Reporter.Report(ctx, spec.CallbackURL, Report{
		JobID:  spec.ID,
		Status: StatusRunning,
		Logs:   job.Log.Entries(),
	})
	e.Events.Publish(EventJobRunning, map[string]any{"jobId": spec.ID, "items": len(items)})

	results := make([]ItemResult, 0, len(items))
	for _, key := range items {
		// Cooperative abort between items only; an in-flight toolkit call is
		// never killed from outside.
		if ctx.Err() != nil {
			job.Log.Errorf("Job aborted: %s", ctx.Err())
			return e.finish(ctx, job, runner, results, StatusFailed)
		}

		result := e.runItem(ctx, runner, job, key)
		results = append(results, result)
		e.Events.Publish(EventJobItem, map[string]any{"jobId": spec.ID, "item": result.Key, "outcome": result.Outcome})
	}

	failed := 0
	for _, r := range results {
		if r.Outcome == OutcomeError {
			failed++
		}
	}
	job.Log.Successf("Job complete: %d of %d items processed, %d failed", len(results)-failed, len(results), failed)

	return e.finish(ctx, job, runner, results, StatusSuccess)
}

// runItem invokes the runner under the per-item failure boundary: a panic
// out of the runner becomes an error result, never a dead worker.
func (e *Executor) runItem(ctx context.Context, runner Runner, job *Job, key string) (result ItemResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[Executor] Job %s: panic in item %s: %v", job.Spec.ID, key, r)
			job.Log.Errorf("Failed to process %s: %v", key, r)
			result = ItemResult{
				Key:     key,
				Outcome: OutcomeError,
				Detail: map[string]any{
					"name":    key,
					"status":  string(OutcomeError),
					"message": fmt.Sprintf("%v", r),
				},
			}
		}
	}()

	return runner.RunItem(ctx, job, key)
}

func (e *Executor) finish(ctx context.Context, job *Job, runner Runner, results []ItemResult, status Status) Report {
	report := Report{
		JobID:  job.Spec.ID,
		Status: status,
		Logs:   job.Log.Entries(),
	}

	if len(results) > 0 {
		records := make([]map[string]any, 0, len(results))
		for _, r := range results {
			records = append(records, r.Detail)
		}
		report.Result = map[string][]map[string]any{runner.ResultKey(): records}
	}

	// Terminal delivery is detached from the job context: an aborted job
	// still reports its outcome, bounded by the reporter's HTTP timeout.
	e.Reporter.Report(context.WithoutCancel(ctx), job.Spec.CallbackURL, report)

	if status == StatusFailed {
		log.Errorf("[Executor] Job %s failed", job.Spec.ID)
		e.Events.Publish(EventJobError, map[string]any{"jobId": job.Spec.ID})
	} else {
		log.Infof("[Executor] Job %s finished: %d items", job.Spec.ID, len(results))
		e.Events.Publish(EventJobDone, map[string]any{"jobId": job.Spec.ID, "items": len(results)})
	}

	return report
}
