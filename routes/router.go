package routes

import (
	"net/http"

	"github.com/convin-ai/csm-backend/repository"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all API routes onto the engine.
func RegisterRoutes(router *gin.Engine, store repository.Store) {
	RegisterAuthRoutes(router, store)
	RegisterUserRoutes(router, store)
	RegisterCustomerRoutes(router, store)
	RegisterActivityRoutes(router, store)
	RegisterRiskRoutes(router, store)
	RegisterOpportunityRoutes(router, store)
	RegisterTaskRoutes(router, store)
	RegisterReportRoutes(router, store)
	RegisterDashboardRoutes(router, store)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
