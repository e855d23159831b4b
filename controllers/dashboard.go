package controllers

import (
	"net/http"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"
	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// DashboardController computes the landing-page summary.
type DashboardController struct {
	store repository.Store
}

// NewDashboardController builds a DashboardController on the given store.
func NewDashboardController(store repository.Store) *DashboardController {
	return &DashboardController{store: store}
}

// Stats aggregates counts and sums across all collections, computed fresh
// per request. The task figures are scoped to the authenticated caller.
func (dc *DashboardController) Stats(c *gin.Context) {
	caller, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	ctx := c.Request.Context()
	var stats models.DashboardStats

	if stats.TotalCustomers, err = dc.store.Count(ctx, repository.CustomersCollection, bson.M{}); err != nil {
		utils.HandleError(c, err)
		return
	}
	if stats.TotalARR, err = dc.store.SumField(ctx, repository.CustomersCollection, bson.M{}, "arr"); err != nil {
		utils.HandleError(c, err)
		return
	}

	healthCounts := []struct {
		status models.HealthStatus
		out    *int64
	}{
		{models.HealthStatusHealthy, &stats.HealthyCustomers},
		{models.HealthStatusAtRisk, &stats.AtRiskCustomers},
		{models.HealthStatusCritical, &stats.CriticalCustomers},
	}
	for _, hc := range healthCounts {
		if *hc.out, err = dc.store.Count(ctx, repository.CustomersCollection, bson.M{"health_status": hc.status}); err != nil {
			utils.HandleError(c, err)
			return
		}
	}

	if stats.OpenRisks, err = dc.store.Count(ctx, repository.RisksCollection, bson.M{"status": models.RiskStatusOpen}); err != nil {
		utils.HandleError(c, err)
		return
	}
	if stats.CriticalRisks, err = dc.store.Count(ctx, repository.RisksCollection, bson.M{"severity": models.RiskSeverityCritical}); err != nil {
		utils.HandleError(c, err)
		return
	}

	activePipeline := bson.M{"stage": bson.M{"$ne": "Closed Won"}}
	if stats.ActiveOpportunities, err = dc.store.Count(ctx, repository.OpportunitiesCollection, activePipeline); err != nil {
		utils.HandleError(c, err)
		return
	}
	if stats.PipelineValue, err = dc.store.SumField(ctx, repository.OpportunitiesCollection, activePipeline, "value"); err != nil {
		utils.HandleError(c, err)
		return
	}

	myOpenTasks := bson.M{
		"assigned_to_id": caller.ID,
		"status":         bson.M{"$ne": models.TaskStatusCompleted},
	}
	if stats.MyTasks, err = dc.store.Count(ctx, repository.TasksCollection, myOpenTasks); err != nil {
		utils.HandleError(c, err)
		return
	}

	// Overdue relies on due_date being ISO formatted: lexicographic order is
	// chronological order.
	overdueTasks := bson.M{
		"assigned_to_id": caller.ID,
		"status":         bson.M{"$ne": models.TaskStatusCompleted},
		"due_date":       bson.M{"$lt": utils.Today()},
	}
	if stats.OverdueTasks, err = dc.store.Count(ctx, repository.TasksCollection, overdueTasks); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
