package routes

import (
	"github.com/convin-ai/csm-backend/controllers"
	"github.com/convin-ai/csm-backend/middleware"
	"github.com/convin-ai/csm-backend/repository"

	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes wires the summary statistics endpoint.
func RegisterDashboardRoutes(router *gin.Engine, store repository.Store) {
	controller := controllers.NewDashboardController(store)

	dashboardRoutes := router.Group("/api/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware())

	dashboardRoutes.GET("/stats", controller.Stats)
}
