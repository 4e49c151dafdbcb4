package jobs

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRejectsUnknownJobType(t *testing.T) {
	d := NewDispatcher(testExecutor(&fakeRunner{key: "files"}), 1, 1)

	_, err := d.Submit(Spec{Kind: "replication", CallbackURL: "http://localhost/cb"})

	var invalid *InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "replication")
	// Nothing was queued.
	assert.Empty(t, d.queue)
}

func TestSubmitRejectsBadCallbackURL(t *testing.T) {
	d := NewDispatcher(testExecutor(&fakeRunner{key: "files"}), 1, 1)

	for _, callbackURL := range []string{"", "not a url", "ftp://host/cb", "/relative/path"} {
		_, err := d.Submit(Spec{Kind: KindExtraction, CallbackURL: callbackURL})
		var invalid *InvalidRequestError
		assert.ErrorAs(t, err, &invalid, "callback %q must be rejected", callbackURL)
	}
	assert.Empty(t, d.queue)
}

func TestSubmitGeneratesJobId(t *testing.T) {
	d := NewDispatcher(testExecutor(&fakeRunner{key: "files"}), 1, 1)

	id, err := d.Submit(Spec{Kind: KindExtraction, CallbackURL: "http://localhost/cb"})

	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestSubmitFailsFastWhenQueueFull(t *testing.T) {
	// No workers started, so the queue only drains into nothing.
	d := NewDispatcher(testExecutor(&fakeRunner{key: "files"}), 1, 1)

	_, err := d.Submit(Spec{ID: "a", Kind: KindExtraction, CallbackURL: "http://localhost/cb"})
	require.NoError(t, err)

	_, err = d.Submit(Spec{ID: "b", Kind: KindExtraction, CallbackURL: "http://localhost/cb"})
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestSubmitRunsJobAsynchronously(t *testing.T) {
	rec := newCallbackRecorder(t)
	done := make(chan string, 1)

	runner := &fakeRunner{
		key:   "files",
		items: []string{"Parcels"},
		itemFn: func(key string) ItemResult {
			done <- key
			return ItemResult{Key: key, Outcome: OutcomeSuccess, Detail: map[string]any{"name": key, "status": "success"}}
		},
	}

	d := NewDispatcher(testExecutor(runner), 2, 4)
	d.Start()
	defer d.Stop()

	id, err := d.Submit(Spec{ID: "job-async", Kind: KindExtraction, CallbackURL: rec.server.URL})
	require.NoError(t, err)
	assert.Equal(t, "job-async", id)

	select {
	case key := <-done:
		assert.Equal(t, "Parcels", key)
	case <-time.After(5 * time.Second):
		t.Fatal("job was accepted but never executed")
	}
}

func TestStopDrainsWorkers(t *testing.T) {
	d := NewDispatcher(testExecutor(&fakeRunner{key: "files"}), 3, 4)
	d.Start()

	finished := make(chan struct{})
	go func() {
		d.Stop()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestValidateCallbackURL(t *testing.T) {
	assert.NoError(t, validateCallbackURL("http://localhost:8080/callback"))
	assert.NoError(t, validateCallbackURL("https://callbacks.example.com/jobs"))
	assert.Error(t, validateCallbackURL("http://"))
	assert.Error(t, validateCallbackURL("localhost:8080/callback"))
}

// Regression guard: an executor without events or toolkit must not panic.
func TestExecutorDefaults(t *testing.T) {
	e := NewExecutor(nil, &Reporter{Client: &http.Client{Timeout: time.Second}, Attempts: 1, Backoff: time.Millisecond})
	e.SimulationDelay = 0

	report := e.Execute(context.Background(), Spec{
		ID:   "job-defaults",
		Kind: KindExtraction,
		Config: map[string]any{
			"sourcePath":   "/data/source.gdb",
			"outputFolder": "/data/out",
		},
		CallbackURL: "http://127.0.0.1:1/unreachable",
	})

	assert.Equal(t, StatusSuccess, report.Status)
}
