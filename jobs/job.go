package jobs

import (
	"time"
)

type Kind string

const (
	KindExtraction Kind = "extraction"
	KindConversion Kind = "conversion"
	KindComparison Kind = "comparison"
)

func (k Kind) Valid() bool {
	switch k {
	case KindExtraction, KindConversion, KindComparison:
		return true
	}
	return false
}

type Status string

const (
	StatusAccepted Status = "accepted"
	StatusRunning  Status = "running"
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeWarning Outcome = "warning"
	OutcomeError   Outcome = "error"
)

// Spec describes one submitted job. Immutable once accepted by the dispatcher.
type Spec struct {
	ID          string         `json:"jobId"`
	Kind        Kind           `json:"jobType"`
	Config      map[string]any `json:"config"`
	CallbackURL string         `json:"callbackUrl"`
}

// LogEntry is one line of the job log, append-only and ordered.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Type      Severity  `json:"type"`
	Message   string    `json:"message"`
}

// ItemResult is the outcome of one work item. Detail is the record that ends
// up in the terminal callback's result array, so runners must fill it for
// error outcomes too.
type ItemResult struct {
	Key     string
	Outcome Outcome
	Detail  map[string]any
}

// Report is the payload delivered to the callback address.
type Report struct {
	JobID  string                      `json:"jobId"`
	Status Status                      `json:"status"`
	Logs   []LogEntry                  `json:"logs,omitempty"`
	Result map[string][]map[string]any `json:"result,omitempty"`
}

// Job is the mutable per-run state, owned exclusively by the executor
// goroutine running it.
type Job struct {
	Spec Spec
	Log  *JobLog
}

func (s Spec) ConfigString(key string) string {
	if v, ok := s.Config[key].(string); ok {
		return v
	}
	return ""
}

func (s Spec) ConfigBool(key string) bool {
	if v, ok := s.Config[key].(bool); ok {
		return v
	}
	return false
}

// ConfigStrings reads a string list from the config. JSON unmarshalling
// produces []any, so both representations are accepted.
func (s Spec) ConfigStrings(key string) []string {
	switch v := s.Config[key].(type) {
	case []string:
		return v
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				values = append(values, str)
			}
		}
		return values
	}
	return nil
}
