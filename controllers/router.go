package controllers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/srad/geosink/controllers/api/v1"
	"github.com/srad/geosink/docs"
	"github.com/srad/geosink/middlewares"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           GeoSink API
// @version         1.0
// @description     Dispatches long-running GIS migration jobs and reports their outcome via HTTP callbacks.
//
// @contact.name   API Support
// @contact.url    https://github.com/srad
//
// @host      localhost:3000
// @BasePath  /api/v1

// Setup initializes routing information.
func Setup(env *v1.Env) http.Handler {
	router := gin.New()
	router.Use(gin.Recovery())

	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		AllowWebSockets:  true,
		AllowWildcard:    true,
	}))

	apiV1 := router.Group("/api/v1")
	{
		// Public: health, auth and the machine-to-machine job submission.
		apiV1.GET("/health", env.GetHealth)
		apiV1.POST("/auth/signup", env.CreateUser)
		apiV1.POST("/auth/login", env.Login)
		apiV1.POST("/execute", env.Execute)

		// Operator surface behind JWT.
		apiV1.GET("/user/profile", middlewares.CheckAuthorizationHeader, env.GetUserProfile)
		apiV1.GET("/admin/version", middlewares.CheckAuthorizationHeader, env.GetVersion)
		apiV1.POST("/browse", middlewares.CheckAuthorizationHeader, env.Browse)
		apiV1.POST("/featureclasses", middlewares.CheckAuthorizationHeader, env.ListFeatureClasses)
		apiV1.GET("/ws", middlewares.CheckAuthorizationHeader, env.Hub.Handle)
	}

	return router
}
