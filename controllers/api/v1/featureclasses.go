package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srad/geosink/app"
	"github.com/srad/geosink/gis"
)

type FeatureClassesRequest struct {
	Path string `json:"path" valid:"Required"`
}

type FeatureClassesResponse struct {
	Path             string             `json:"path"`
	FeatureClasses   []gis.FeatureClass `json:"featureClasses"`
	Tables           []gis.FeatureClass `json:"tables"`
	ToolkitAvailable bool               `json:"toolkitAvailable"`
	Message          string             `json:"message,omitempty"`
}

// ListFeatureClasses godoc
// @Summary     List feature classes and tables of a datasource
// @Description Enumerates the layers of a geodatabase or SDE connection. Returns deterministic sample data when the GIS toolkit is not installed.
// @Tags        browse
// @Accept      json
// @Produce     json
// @Param       request body FeatureClassesRequest true "Datasource path"
// @Success     200 {object} FeatureClassesResponse
// @Failure     400 {} string http.StatusBadRequest
// @Failure     500 {} string http.StatusInternalServerError
// @Router      /featureclasses [post]
func (e *Env) ListFeatureClasses(c *gin.Context) {
	appG := app.Gin{C: c}

	var request FeatureClassesRequest
	if code := app.BindAndValid(c, &request); code != http.StatusOK {
		appG.Error(code, errors.New("path is required"))
		return
	}

	if !e.Toolkit.Available() {
		sample := gis.SampleCatalog()
		appG.Response(http.StatusOK, FeatureClassesResponse{
			Path:             request.Path,
			FeatureClasses:   sample.FeatureClasses,
			Tables:           sample.Tables,
			ToolkitAvailable: false,
			Message:          "GIS toolkit not available - showing sample data",
		})
		return
	}

	layers, err := e.Toolkit.ListLayers(c.Request.Context(), request.Path)
	if err != nil {
		appG.Error(http.StatusInternalServerError, err)
		return
	}

	response := FeatureClassesResponse{
		Path:             request.Path,
		FeatureClasses:   []gis.FeatureClass{},
		Tables:           []gis.FeatureClass{},
		ToolkitAvailable: true,
	}
	for _, layer := range layers {
		if layer.Type == "Table" {
			response.Tables = append(response.Tables, layer)
		} else {
			response.FeatureClasses = append(response.FeatureClasses, layer)
		}
	}

	appG.Response(http.StatusOK, response)
}
