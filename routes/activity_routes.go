package routes

import (
	"github.com/convin-ai/csm-backend/controllers"
	"github.com/convin-ai/csm-backend/middleware"
	"github.com/convin-ai/csm-backend/repository"

	"github.com/gin-gonic/gin"
)

// RegisterActivityRoutes wires activity recording and listing.
func RegisterActivityRoutes(router *gin.Engine, store repository.Store) {
	controller := controllers.NewActivityController(store)

	activityRoutes := router.Group("/api/activities")
	activityRoutes.Use(middleware.AuthMiddleware())

	activityRoutes.GET("", controller.List)
	activityRoutes.POST("", controller.Create)
}
