package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srad/geosink/jobs"
)

func executeRouter(env *Env) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/execute", env.Execute)
	return router
}

func testEnv(t *testing.T, queueSize int) *Env {
	t.Helper()

	reporter := &jobs.Reporter{
		Client:   &http.Client{Timeout: time.Second},
		Attempts: 1,
		Backoff:  time.Millisecond,
	}
	executor := jobs.NewExecutor(nil, reporter)
	executor.SimulationDelay = 0

	// Workers stay stopped so queued jobs are not drained during the test.
	dispatcher := jobs.NewDispatcher(executor, 1, queueSize)
	return &Env{Dispatcher: dispatcher}
}

func postExecute(router *gin.Engine, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/execute", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestExecuteAcceptsJob(t *testing.T) {
	router := executeRouter(testEnv(t, 4))

	w := postExecute(router, map[string]any{
		"jobId":       "job-1",
		"jobType":     "extraction",
		"config":      map[string]any{"sourcePath": "/data/city.gdb", "outputFolder": "/data/out"},
		"callbackUrl": "http://localhost:9000/callback",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response ExecuteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "accepted", response.Status)
	assert.Equal(t, "job-1", response.JobId)
}

func TestExecuteGeneratesMissingJobId(t *testing.T) {
	router := executeRouter(testEnv(t, 4))

	w := postExecute(router, map[string]any{
		"jobType":     "conversion",
		"callbackUrl": "http://localhost:9000/callback",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response ExecuteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.JobId)
}

func TestExecuteRejectsUnknownJobType(t *testing.T) {
	router := executeRouter(testEnv(t, 4))

	w := postExecute(router, map[string]any{
		"jobType":     "replication",
		"callbackUrl": "http://localhost:9000/callback",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteRejectsMissingFields(t *testing.T) {
	router := executeRouter(testEnv(t, 4))

	// No callbackUrl.
	w := postExecute(router, map[string]any{"jobType": "extraction"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No jobType.
	w = postExecute(router, map[string]any{"callbackUrl": "http://localhost:9000/callback"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteRejectsInvalidCallbackUrl(t *testing.T) {
	router := executeRouter(testEnv(t, 4))

	w := postExecute(router, map[string]any{
		"jobType":     "extraction",
		"callbackUrl": "not-a-url",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteFullQueueReturns503(t *testing.T) {
	router := executeRouter(testEnv(t, 1))

	body := map[string]any{
		"jobType":     "extraction",
		"callbackUrl": "http://localhost:9000/callback",
	}

	w := postExecute(router, body)
	require.Equal(t, http.StatusOK, w.Code)

	w = postExecute(router, body)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
