package routes

import (
	"github.com/convin-ai/csm-backend/controllers"
	"github.com/convin-ai/csm-backend/middleware"
	"github.com/convin-ai/csm-backend/repository"

	"github.com/gin-gonic/gin"
)

// RegisterCustomerRoutes wires customer CRUD, the manual health override and
// the CSV bulk upload.
func RegisterCustomerRoutes(router *gin.Engine, store repository.Store) {
	controller := controllers.NewCustomerController(store)

	customerRoutes := router.Group("/api/customers")
	customerRoutes.Use(middleware.AuthMiddleware())

	customerRoutes.GET("", controller.List)
	customerRoutes.POST("", controller.Create)
	customerRoutes.POST("/bulk-upload", controller.BulkUpload)
	customerRoutes.GET("/:id", controller.Get)
	customerRoutes.PUT("/:id", controller.Update)
	customerRoutes.DELETE("/:id", controller.Delete)
	customerRoutes.PUT("/:id/health", controller.UpdateHealth)
}
