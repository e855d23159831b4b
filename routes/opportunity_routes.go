package routes

import (
	"github.com/convin-ai/csm-backend/controllers"
	"github.com/convin-ai/csm-backend/middleware"
	"github.com/convin-ai/csm-backend/repository"

	"github.com/gin-gonic/gin"
)

// RegisterOpportunityRoutes wires the expansion pipeline.
func RegisterOpportunityRoutes(router *gin.Engine, store repository.Store) {
	controller := controllers.NewOpportunityController(store)

	opportunityRoutes := router.Group("/api/opportunities")
	opportunityRoutes.Use(middleware.AuthMiddleware())

	opportunityRoutes.GET("", controller.List)
	opportunityRoutes.POST("", controller.Create)
}
