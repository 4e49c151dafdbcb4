package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srad/geosink/app"
	"github.com/srad/geosink/database"
	"github.com/srad/geosink/services"
)

type TokenResponse struct {
	Token string `json:"token"`
}

// CreateUser godoc
// @Summary     Register a new user
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body services.AuthenticationRequest true "Credentials"
// @Success     200
// @Failure     400 {} string http.StatusBadRequest
// @Router      /auth/signup [post]
func (e *Env) CreateUser(c *gin.Context) {
	appG := app.Gin{C: c}

	var request services.AuthenticationRequest
	if code := app.BindAndValid(c, &request); code != http.StatusOK {
		appG.Error(code, errors.New("invalid signup request"))
		return
	}

	if err := services.CreateUser(request); err != nil {
		appG.Error(http.StatusBadRequest, err)
		return
	}

	appG.Response(http.StatusOK, nil)
}

// Login godoc
// @Summary     Authenticate and receive a JWT
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body services.AuthenticationRequest true "Credentials"
// @Success     200 {object} TokenResponse
// @Failure     401 {} string http.StatusUnauthorized
// @Router      /auth/login [post]
func (e *Env) Login(c *gin.Context) {
	appG := app.Gin{C: c}

	var request services.AuthenticationRequest
	if code := app.BindAndValid(c, &request); code != http.StatusOK {
		appG.Error(code, errors.New("invalid login request"))
		return
	}

	token, err := services.AuthenticateUser(request)
	if err != nil {
		appG.Error(http.StatusUnauthorized, err)
		return
	}

	appG.Response(http.StatusOK, TokenResponse{Token: token})
}

// GetUserProfile godoc
// @Summary     Current user profile
// @Tags        auth
// @Produce     json
// @Success     200 {object} database.User
// @Failure     401 {} string http.StatusUnauthorized
// @Router      /user/profile [get]
func (e *Env) GetUserProfile(c *gin.Context) {
	appG := app.Gin{C: c}

	user, exists := c.Get("currentUser")
	if !exists {
		appG.Error(http.StatusUnauthorized, errors.New("not authenticated"))
		return
	}

	appG.Response(http.StatusOK, user.(*database.User))
}
