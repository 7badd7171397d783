package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mergington-high/activities-api/internal/handler"
)

// SetupRoutes configures all API routes.
func SetupRoutes(activityHandler *handler.ActivityHandler, staticDir string) *gin.Engine {
	r := gin.Default()
	r.Use(handler.RequestID())

	// Landing page plumbing: the UI lives under /static and the root
	// redirects to it.
	r.GET("/", handler.Root)
	r.Static("/static", staticDir)

	// Activity endpoints
	r.GET("/activities", activityHandler.GetActivities)
	r.POST("/activities/:activity_name/signup", activityHandler.SignUp)
	r.DELETE("/activities/:activity_name/unregister", activityHandler.Unregister)

	// Health endpoint
	r.GET("/health", handler.HealthCheck)

	return r
}
