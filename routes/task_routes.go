package routes

import (
	"github.com/convin-ai/csm-backend/controllers"
	"github.com/convin-ai/csm-backend/middleware"
	"github.com/convin-ai/csm-backend/repository"

	"github.com/gin-gonic/gin"
)

// RegisterTaskRoutes wires follow-up task management.
func RegisterTaskRoutes(router *gin.Engine, store repository.Store) {
	controller := controllers.NewTaskController(store)

	taskRoutes := router.Group("/api/tasks")
	taskRoutes.Use(middleware.AuthMiddleware())

	taskRoutes.GET("", controller.List)
	taskRoutes.POST("", controller.Create)
	taskRoutes.PUT("/:id", controller.Update)
	taskRoutes.DELETE("/:id", controller.Delete)
}
