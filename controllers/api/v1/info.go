package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/srad/geosink/app"
	"github.com/srad/geosink/conf"
	"github.com/srad/geosink/helpers"
)

type HealthResponse struct {
	Status           string `json:"status"`
	ToolkitAvailable bool   `json:"toolkitAvailable"`
	Timestamp        string `json:"timestamp"`
}

type VersionResponse struct {
	Version  string            `json:"version"`
	Commit   string            `json:"commit"`
	DiskInfo *helpers.DiskInfo `json:"diskInfo,omitempty"`
}

// GetHealth godoc
// @Summary     Health check
// @Description Reports service health and whether the GIS toolkit is installed.
// @Tags        info
// @Produce     json
// @Success     200 {object} HealthResponse
// @Router      /health [get]
func (e *Env) GetHealth(c *gin.Context) {
	appG := app.Gin{C: c}
	appG.Response(http.StatusOK, HealthResponse{
		Status:           "healthy",
		ToolkitAvailable: e.Toolkit.Available(),
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	})
}

// GetVersion godoc
// @Summary     Build and disk information
// @Tags        admin
// @Produce     json
// @Success     200 {object} VersionResponse
// @Failure     401 {} string http.StatusUnauthorized
// @Router      /admin/version [get]
func (e *Env) GetVersion(c *gin.Context) {
	appG := app.Gin{C: c}

	response := VersionResponse{Version: e.Version, Commit: e.Commit}
	if disk, err := helpers.DiskUsage(conf.Read().DataDisk); err != nil {
		log.Errorf("[Info] Cannot read disk info: %s", err)
	} else {
		response.DiskInfo = disk
	}

	appG.Response(http.StatusOK, response)
}
