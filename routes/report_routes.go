package routes

import (
	"github.com/convin-ai/csm-backend/controllers"
	"github.com/convin-ai/csm-backend/middleware"
	"github.com/convin-ai/csm-backend/repository"

	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes wires Data Labs report deliverables.
func RegisterReportRoutes(router *gin.Engine, store repository.Store) {
	controller := controllers.NewReportController(store)

	reportRoutes := router.Group("/api/datalabs-reports")
	reportRoutes.Use(middleware.AuthMiddleware())

	reportRoutes.GET("", controller.List)
	reportRoutes.POST("", controller.Create)
}
