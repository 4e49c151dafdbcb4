package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/srad/geosink/app"
	"github.com/srad/geosink/services"
)

func CheckAuthorizationHeader(c *gin.Context) {
	appG := app.Gin{C: c}
	var authHeader = c.GetHeader("Authorization")

	if authHeader == "" {
		// Workaround for JWT over websockets. The bearer can also be sent as get parameter.
		if getAuth, exists := c.GetQuery("Authorization"); exists && getAuth != "" {
			authHeader = getAuth
		} else {
			appG.Error(http.StatusUnauthorized, errors.New("authorization header is missing"))
			return
		}
	}

	authToken := strings.Split(authHeader, " ")
	if len(authToken) != 2 || authToken[0] != "Bearer" {
		appG.Error(http.StatusUnauthorized, errors.New("invalid token format"))
		return
	}

	tokenString := authToken[1]
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET")), nil
	})
	if err != nil || !token.Valid {
		appG.Error(http.StatusUnauthorized, errors.New("invalid or expired token"))
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		appG.Error(http.StatusUnauthorized, errors.New("invalid token"))
		return
	}

	exp, ok := claims["exp"].(float64)
	if !ok || float64(time.Now().Unix()) > exp {
		appG.Error(http.StatusUnauthorized, errors.New("token expired"))
		return
	}

	// Numbers in MapClaims unmarshal as float64.
	id, ok := claims["id"].(float64)
	if !ok {
		appG.Error(http.StatusUnauthorized, errors.New("invalid token"))
		return
	}

	user, err := services.GetUserById(uint(id))
	if err != nil {
		appG.Error(http.StatusUnauthorized, err)
		return
	}

	c.Set("currentUser", user)
	c.Next()
}
