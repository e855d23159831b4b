package routes

import (
	"github.com/convin-ai/csm-backend/controllers"
	"github.com/convin-ai/csm-backend/middleware"
	"github.com/convin-ai/csm-backend/repository"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes wires registration, login and session introspection.
func RegisterAuthRoutes(router *gin.Engine, store repository.Store) {
	controller := controllers.NewAuthController(store)

	authRoutes := router.Group("/api/auth")
	authRoutes.POST("/register", controller.Register)
	authRoutes.POST("/login", controller.Login)
	authRoutes.GET("/me", middleware.AuthMiddleware(), controller.Me)
}
