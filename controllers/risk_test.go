package controllers

import (
	"net/http"
	"testing"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"

	"github.com/gin-gonic/gin"
)

func riskRouter(store repository.Store) *gin.Engine {
	controller := NewRiskController(store)

	router := gin.New()
	group := router.Group("/api/risks")
	group.Use(authAs("csm-1", "priya.sharma@convin.ai", "CSM"))

	group.GET("", controller.List)
	group.POST("", controller.Create)
	group.PUT("/:id", controller.Update)
	return router
}

func TestRiskCreateStartsOpen(t *testing.T) {
	store := newFakeStore()
	seedCustomerDoc(t, store, "c1", "Zomato")
	seedUser(t, store, "csm-2", "Rajesh Kumar")
	router := riskRouter(store)

	w := performJSON(t, router, http.MethodPost, "/api/risks", map[string]interface{}{
		"customer_id":     "c1",
		"category":        "Product Usage Risks",
		"subcategory":     "Inactive Users",
		"severity":        "High",
		"title":           "User engagement declining",
		"description":     "30% of licensed users inactive for two weeks.",
		"identified_date": "2026-08-20",
		"assigned_to_id":  "csm-2",
	})
	requireStatus(t, w, http.StatusOK)

	var risk models.Risk
	decodeBody(t, w, &risk)

	if risk.Status != models.RiskStatusOpen {
		t.Errorf("new risk must start Open, got %v", risk.Status)
	}
	if risk.CustomerName != "Zomato" {
		t.Errorf("expected denormalized customer name, got %q", risk.CustomerName)
	}
	if risk.AssignedToName != "Rajesh Kumar" {
		t.Errorf("expected resolved assignee, got %q", risk.AssignedToName)
	}
}

func TestRiskCreateUnknownCustomer(t *testing.T) {
	router := riskRouter(newFakeStore())

	w := performJSON(t, router, http.MethodPost, "/api/risks", map[string]interface{}{
		"customer_id":     "missing",
		"category":        "Relationship Risks",
		"severity":        "High",
		"title":           "Champion left",
		"description":     "n/a",
		"identified_date": "2026-08-20",
		"assigned_to_id":  "csm-1",
	})
	requireStatus(t, w, http.StatusNotFound)
}

func TestRiskUpdatePartial(t *testing.T) {
	store := newFakeStore()
	seedCustomerDoc(t, store, "c1", "Zomato")
	router := riskRouter(store)

	w := performJSON(t, router, http.MethodPost, "/api/risks", map[string]interface{}{
		"customer_id":     "c1",
		"category":        "Commercial/Billing Risks",
		"severity":        "Medium",
		"title":           "Renewal concerns",
		"description":     "Budget constraints raised for renewal.",
		"identified_date": "2026-08-01",
		"assigned_to_id":  "csm-1",
	})
	requireStatus(t, w, http.StatusOK)
	var risk models.Risk
	decodeBody(t, w, &risk)

	w = performJSON(t, router, http.MethodPut, "/api/risks/"+risk.ID, map[string]interface{}{
		"status":          "Resolved",
		"resolution_date": "2026-08-25",
	})
	requireStatus(t, w, http.StatusOK)

	var updated models.Risk
	decodeBody(t, w, &updated)

	if updated.Status != models.RiskStatusResolved {
		t.Errorf("expected Resolved, got %v", updated.Status)
	}
	if updated.ResolutionDate != "2026-08-25" {
		t.Errorf("expected resolution date, got %q", updated.ResolutionDate)
	}
	if updated.Title != "Renewal concerns" || updated.Severity != models.RiskSeverityMedium {
		t.Errorf("untouched fields must survive: %q/%v", updated.Title, updated.Severity)
	}
}

func TestRiskUpdateNotFound(t *testing.T) {
	router := riskRouter(newFakeStore())

	w := performJSON(t, router, http.MethodPut, "/api/risks/missing", map[string]interface{}{
		"status": "Closed",
	})
	requireStatus(t, w, http.StatusNotFound)
	if detail := requireDetail(t, w); detail != "Risk not found" {
		t.Errorf("unexpected detail %q", detail)
	}
}
