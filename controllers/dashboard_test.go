package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"
	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
)

func dashboardRouter(store repository.Store) *gin.Engine {
	controller := NewDashboardController(store)

	router := gin.New()
	group := router.Group("/api/dashboard")
	group.Use(authAs("csm-1", "priya.sharma@convin.ai", "CSM"))
	group.GET("/stats", controller.Stats)
	return router
}

func insert(t *testing.T, store repository.Store, collection string, doc interface{}) {
	t.Helper()
	if err := store.Insert(context.Background(), collection, doc); err != nil {
		t.Fatalf("insert into %s: %v", collection, err)
	}
}

func TestDashboardStats(t *testing.T) {
	store := newFakeStore()
	now := utils.NowUTC()

	insert(t, store, repository.CustomersCollection, models.Customer{
		ID: "c1", CompanyName: "Zomato", ARR: 1000000, HealthStatus: models.HealthStatusHealthy,
	})
	insert(t, store, repository.CustomersCollection, models.Customer{
		ID: "c2", CompanyName: "Swiggy", ARR: 500000, HealthStatus: models.HealthStatusAtRisk,
	})
	insert(t, store, repository.CustomersCollection, models.Customer{
		ID: "c3", CompanyName: "Dunzo", ARR: 250000, HealthStatus: models.HealthStatusCritical,
	})

	insert(t, store, repository.RisksCollection, models.Risk{
		ID: "r1", CustomerID: "c2", Severity: models.RiskSeverityHigh, Status: models.RiskStatusOpen,
	})
	insert(t, store, repository.RisksCollection, models.Risk{
		ID: "r2", CustomerID: "c3", Severity: models.RiskSeverityCritical, Status: models.RiskStatusInProgress,
	})
	insert(t, store, repository.RisksCollection, models.Risk{
		ID: "r3", CustomerID: "c3", Severity: models.RiskSeverityCritical, Status: models.RiskStatusClosed,
	})

	insert(t, store, repository.OpportunitiesCollection, models.Opportunity{
		ID: "o1", CustomerID: "c1", Stage: "Proposal", Value: 200000,
	})
	insert(t, store, repository.OpportunitiesCollection, models.Opportunity{
		ID: "o2", CustomerID: "c1", Stage: "Closed Won", Value: 999999,
	})
	insert(t, store, repository.OpportunitiesCollection, models.Opportunity{
		ID: "o3", CustomerID: "c2", Stage: "Identified", Value: 50000,
	})

	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	insert(t, store, repository.TasksCollection, models.Task{
		ID: "t1", AssignedToID: "csm-1", Status: models.TaskStatusInProgress, DueDate: yesterday,
	})
	insert(t, store, repository.TasksCollection, models.Task{
		ID: "t2", AssignedToID: "csm-1", Status: models.TaskStatusNotStarted, DueDate: tomorrow,
	})
	insert(t, store, repository.TasksCollection, models.Task{
		ID: "t3", AssignedToID: "csm-1", Status: models.TaskStatusCompleted, DueDate: yesterday,
	})
	insert(t, store, repository.TasksCollection, models.Task{
		ID: "t4", AssignedToID: "csm-2", Status: models.TaskStatusInProgress, DueDate: yesterday,
	})

	router := dashboardRouter(store)
	w := performJSON(t, router, http.MethodGet, "/api/dashboard/stats", nil)
	requireStatus(t, w, http.StatusOK)

	var stats models.DashboardStats
	decodeBody(t, w, &stats)

	if stats.TotalCustomers != 3 {
		t.Errorf("total_customers: expected 3, got %d", stats.TotalCustomers)
	}
	if stats.TotalARR != 1750000 {
		t.Errorf("total_arr: expected 1750000, got %v", stats.TotalARR)
	}
	if stats.HealthyCustomers != 1 || stats.AtRiskCustomers != 1 || stats.CriticalCustomers != 1 {
		t.Errorf("health split: got %d/%d/%d", stats.HealthyCustomers, stats.AtRiskCustomers, stats.CriticalCustomers)
	}
	if stats.OpenRisks != 1 {
		t.Errorf("open_risks counts Open only: expected 1, got %d", stats.OpenRisks)
	}
	if stats.CriticalRisks != 2 {
		t.Errorf("critical_risks counts by severity: expected 2, got %d", stats.CriticalRisks)
	}
	if stats.ActiveOpportunities != 2 {
		t.Errorf("active_opportunities excludes closed won: expected 2, got %d", stats.ActiveOpportunities)
	}
	if stats.PipelineValue != 250000 {
		t.Errorf("pipeline_value: expected 250000, got %v", stats.PipelineValue)
	}
	if stats.MyTasks != 2 {
		t.Errorf("my_tasks excludes completed and other assignees: expected 2, got %d", stats.MyTasks)
	}
	if stats.OverdueTasks != 1 {
		t.Errorf("overdue_tasks: expected 1, got %d", stats.OverdueTasks)
	}
}

func TestDashboardStatsEmpty(t *testing.T) {
	router := dashboardRouter(newFakeStore())

	w := performJSON(t, router, http.MethodGet, "/api/dashboard/stats", nil)
	requireStatus(t, w, http.StatusOK)

	var stats models.DashboardStats
	decodeBody(t, w, &stats)

	if stats.TotalCustomers != 0 || stats.TotalARR != 0 || stats.OverdueTasks != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
}
