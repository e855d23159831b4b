package routes

import (
	"github.com/convin-ai/csm-backend/controllers"
	"github.com/convin-ai/csm-backend/middleware"
	"github.com/convin-ai/csm-backend/repository"

	"github.com/gin-gonic/gin"
)

// RegisterRiskRoutes wires risk tracking.
func RegisterRiskRoutes(router *gin.Engine, store repository.Store) {
	controller := controllers.NewRiskController(store)

	riskRoutes := router.Group("/api/risks")
	riskRoutes.Use(middleware.AuthMiddleware())

	riskRoutes.GET("", controller.List)
	riskRoutes.POST("", controller.Create)
	riskRoutes.PUT("/:id", controller.Update)
}
