package jobs

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Dispatcher owns the bounded worker pool. Each job occupies one worker for
// its whole lifetime; items inside a job run sequentially because the GIS
// toolkit is not reentrant per connection. Submission never blocks on job
// execution.
type Dispatcher struct {
	Events EventSink

	executor *Executor
	queue    chan Spec
	workers  int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher(executor *Executor, workers, queueSize int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		Events:   noopSink{},
		executor: executor,
		queue:    make(chan Spec, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (d *Dispatcher) Start() {
	log.Infof("[Dispatcher] Starting %d workers", d.workers)
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work(i + 1)
	}
}

// Stop cancels the workers and waits for them to drain. Jobs caught
// mid-flight abort cooperatively between items and still send their terminal
// callback.
func (d *Dispatcher) Stop() {
	d.cancel()
	d.wg.Wait()
	log.Infoln("[Dispatcher] Workers stopped")
}

func (d *Dispatcher) work(id int) {
	defer d.wg.Done()
	for {
		select {
		case <-d.ctx.Done():
			log.Infof("[Dispatcher] Worker %d stopped", id)
			return
		case spec := <-d.queue:
			log.Infof("[Dispatcher] Worker %d executing job %s (%s)", id, spec.ID, spec.Kind)
			d.executor.Execute(d.ctx, spec)
		}
	}
}

// Submit validates the spec, schedules it and returns immediately with the
// job id. A missing id is generated. Malformed submissions are rejected
// synchronously with InvalidRequestError and schedule no background work; a
// full queue fails fast with ErrQueueFull.
func (d *Dispatcher) Submit(spec Spec) (string, error) {
	if spec.ID == "" {
		spec.ID = uuid.NewString()
	}

	if !spec.Kind.Valid() {
		return "", &InvalidRequestError{Reason: fmt.Sprintf("unknown job type %q", spec.Kind)}
	}
	if err := validateCallbackURL(spec.CallbackURL); err != nil {
		return "", err
	}

	select {
	case d.queue <- spec:
		log.Infof("[Dispatcher] Accepted job %s (%s)", spec.ID, spec.Kind)
		d.Events.Publish(EventJobAccepted, map[string]any{"jobId": spec.ID, "jobType": spec.Kind})
		return spec.ID, nil
	default:
		return "", ErrQueueFull
	}
}

func validateCallbackURL(callbackURL string) error {
	u, err := url.ParseRequestURI(callbackURL)
	if err != nil {
		return &InvalidRequestError{Reason: fmt.Sprintf("invalid callback address %q", callbackURL)}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &InvalidRequestError{Reason: fmt.Sprintf("callback address must be an absolute http(s) URL, got %q", callbackURL)}
	}
	return nil
}
