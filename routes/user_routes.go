package routes

import (
	"github.com/convin-ai/csm-backend/controllers"
	"github.com/convin-ai/csm-backend/middleware"
	"github.com/convin-ai/csm-backend/repository"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes wires the team member listing.
func RegisterUserRoutes(router *gin.Engine, store repository.Store) {
	controller := controllers.NewUserController(store)

	userRoutes := router.Group("/api/users")
	userRoutes.Use(middleware.AuthMiddleware())

	userRoutes.GET("", controller.List)
}
