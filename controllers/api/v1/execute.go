package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srad/geosink/app"
	"github.com/srad/geosink/jobs"
)

type ExecuteRequest struct {
	JobId       string         `json:"jobId"`
	JobType     string         `json:"jobType" valid:"Required"`
	Config      map[string]any `json:"config"`
	CallbackUrl string         `json:"callbackUrl" valid:"Required"`
}

type ExecuteResponse struct {
	Status string `json:"status"`
	JobId  string `json:"jobId"`
}

// Execute godoc
// @Summary     Submit a job for background execution
// @Description Validates the request, schedules the job on the worker pool and returns immediately. Progress and outcome are delivered to the callback URL.
// @Tags        jobs
// @Accept      json
// @Produce     json
// @Param       request body ExecuteRequest true "Job submission"
// @Success     200 {object} ExecuteResponse
// @Failure     400 {} string http.StatusBadRequest
// @Failure     503 {} string http.StatusServiceUnavailable
// @Router      /execute [post]
func (e *Env) Execute(c *gin.Context) {
	appG := app.Gin{C: c}

	var request ExecuteRequest
	if code := app.BindAndValid(c, &request); code != http.StatusOK {
		appG.Error(code, errors.New("invalid job submission"))
		return
	}

	jobId, err := e.Dispatcher.Submit(jobs.Spec{
		ID:          request.JobId,
		Kind:        jobs.Kind(request.JobType),
		Config:      request.Config,
		CallbackURL: request.CallbackUrl,
	})

	if err != nil {
		var invalid *jobs.InvalidRequestError
		switch {
		case errors.As(err, &invalid):
			appG.Error(http.StatusBadRequest, err)
		case errors.Is(err, jobs.ErrQueueFull):
			appG.Error(http.StatusServiceUnavailable, err)
		default:
			appG.Error(http.StatusInternalServerError, err)
		}
		return
	}

	appG.Response(http.StatusOK, ExecuteResponse{Status: "accepted", JobId: jobId})
}
