package jobs

// EventSink receives job lifecycle notifications for local observers such as
// the websocket hub. Publishing must never block job execution.
type EventSink interface {
	Publish(name string, data any)
}

const (
	EventJobAccepted = "job:accepted"
	EventJobRunning  = "job:running"
	EventJobItem     = "job:item"
	EventJobDone     = "job:done"
	EventJobError    = "job:error"
)

type noopSink struct{}

func (noopSink) Publish(string, any) {}
