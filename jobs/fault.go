package jobs

import (
	"errors"
	"fmt"
)

// ErrQueueFull is returned by Submit when the dispatcher queue cannot take
// another job; submission must fail fast instead of blocking the caller.
var ErrQueueFull = errors.New("job queue is full")

// InvalidRequestError rejects a malformed submission synchronously, before
// any background work is scheduled.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return e.Reason
}

// JobFault is a failure that prevents the job from starting or continuing at
// all, as opposed to one item's failure. It is the only condition producing
// the terminal status "failed".
type JobFault struct {
	Message string
	Err     error
}

func (f *JobFault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s", f.Message, f.Err)
	}
	return f.Message
}

func (f *JobFault) Unwrap() error {
	return f.Err
}

func faultf(format string, args ...any) *JobFault {
	return &JobFault{Message: fmt.Sprintf(format, args...)}
}
