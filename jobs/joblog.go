package jobs

import (
	"fmt"
	"time"
)

// JobLog accumulates the log entries of a single job run. Not safe for
// concurrent use; the executor owns it for the job's lifetime.
type JobLog struct {
	entries []LogEntry
}

func (l *JobLog) append(severity Severity, format string, args ...any) {
	l.entries = append(l.entries, LogEntry{
		Timestamp: time.Now().UTC(),
		Type:      severity,
		Message:   fmt.Sprintf(format, args...),
	})
}

func (l *JobLog) Infof(format string, args ...any) {
	l.append(SeverityInfo, format, args...)
}

func (l *JobLog) Successf(format string, args ...any) {
	l.append(SeveritySuccess, format, args...)
}

func (l *JobLog) Warningf(format string, args ...any) {
	l.append(SeverityWarning, format, args...)
}

func (l *JobLog) Errorf(format string, args ...any) {
	l.append(SeverityError, format, args...)
}

// Entries returns a copy so a report payload cannot alias entries appended
// later in the run.
func (l *JobLog) Entries() []LogEntry {
	entries := make([]LogEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}
