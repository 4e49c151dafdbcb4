package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastReporter() *Reporter {
	return &Reporter{
		Client:   &http.Client{Timeout: time.Second},
		Attempts: 3,
		Backoff:  time.Millisecond,
	}
}

func TestReportPayloadShape(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	jobLog := &JobLog{}
	jobLog.Infof("Starting extraction")
	jobLog.Successf("Parcels: 15420 features extracted")

	fastReporter().Report(context.Background(), server.URL, Report{
		JobID:  "job-1",
		Status: StatusSuccess,
		Logs:   jobLog.Entries(),
		Result: map[string][]map[string]any{
			"files": {{"name": "Parcels.shp", "status": "success"}},
		},
	})

	require.NotNil(t, payload)
	assert.Equal(t, "job-1", payload["jobId"])
	assert.Equal(t, "success", payload["status"])

	logs, ok := payload["logs"].([]any)
	require.True(t, ok)
	require.Len(t, logs, 2)
	first := logs[0].(map[string]any)
	assert.Equal(t, "info", first["type"])
	assert.Equal(t, "Starting extraction", first["message"])
	// Timestamps travel as RFC3339 strings.
	_, err := time.Parse(time.RFC3339, first["timestamp"].(string))
	assert.NoError(t, err)

	result, ok := payload["result"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, result, "files")
}

func TestReportOmitsEmptyResult(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	fastReporter().Report(context.Background(), server.URL, Report{JobID: "job-2", Status: StatusRunning})

	require.NotNil(t, payload)
	assert.NotContains(t, payload, "result")
}

func TestReportRetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	fastReporter().Report(context.Background(), server.URL, Report{JobID: "job-3", Status: StatusSuccess})

	assert.Equal(t, int32(3), calls.Load())
}

func TestReportGivesUpAfterAttempts(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	// Must return, not error and not loop forever.
	fastReporter().Report(context.Background(), server.URL, Report{JobID: "job-4", Status: StatusSuccess})

	assert.Equal(t, int32(3), calls.Load())
}

func TestReportUnreachableCallbackDoesNotBlockForever(t *testing.T) {
	r := fastReporter()
	done := make(chan struct{})
	go func() {
		r.Report(context.Background(), "http://127.0.0.1:1/callback", Report{JobID: "job-5", Status: StatusSuccess})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Report did not return for an unreachable callback")
	}
}
