package v1

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/srad/geosink/app"
	"github.com/srad/geosink/services"
)

type BrowseRequest struct {
	Path string `json:"path"`
	Type string `json:"type"` // gdb, sde, folder, all
}

// Browse godoc
// @Summary     Browse the server filesystem for geodatabases
// @Description Lists folders, file geodatabases (.gdb) and SDE connection files (.sde) of a directory. An empty path starts at the configured browse root, or at the filesystem roots when browsing is unrestricted.
// @Tags        browse
// @Accept      json
// @Produce     json
// @Param       request body BrowseRequest true "Browse request"
// @Success     200 {object} services.BrowseResult
// @Failure     400 {} string http.StatusBadRequest
// @Failure     404 {} string http.StatusNotFound
// @Router      /browse [post]
func (e *Env) Browse(c *gin.Context) {
	appG := app.Gin{C: c}

	var request BrowseRequest
	if code := app.BindAndValid(c, &request); code != http.StatusOK {
		appG.Error(code, errors.New("invalid browse request"))
		return
	}

	path := request.Path
	if path == "" && e.confined() {
		// A confined deployment starts at its root, not at the drive list.
		path = e.BrowseRoot
	}

	if !e.allowedPath(path) {
		appG.Error(http.StatusBadRequest, errors.New("path outside of browse root"))
		return
	}

	result, err := services.Browse(path, request.Type)
	if err != nil {
		if errors.Is(err, services.ErrPathNotFound) {
			appG.Error(http.StatusNotFound, err)
		} else {
			appG.Error(http.StatusBadRequest, err)
		}
		return
	}

	appG.Response(http.StatusOK, result)
}

func (e *Env) confined() bool {
	return e.BrowseRoot != "" && e.BrowseRoot != "/"
}

func (e *Env) allowedPath(path string) bool {
	if path == "" || !e.confined() {
		return true
	}
	rel, err := filepath.Rel(e.BrowseRoot, filepath.Clean(path))
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
