package controllers

import (
	"net/http"
	"testing"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"
	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
)

func taskRouter(store repository.Store) *gin.Engine {
	controller := NewTaskController(store)

	router := gin.New()
	group := router.Group("/api/tasks")
	group.Use(authAs("csm-1", "priya.sharma@convin.ai", "CSM"))

	group.GET("", controller.List)
	group.POST("", controller.Create)
	group.PUT("/:id", controller.Update)
	group.DELETE("/:id", controller.Delete)
	return router
}

func seedCustomerDoc(t *testing.T, store repository.Store, id, name string) {
	t.Helper()
	insert(t, store, repository.CustomersCollection, models.Customer{
		ID:          id,
		CompanyName: name,
		CreatedAt:   utils.NowUTC(),
		UpdatedAt:   utils.NowUTC(),
	})
}

func TestTaskCreateDefaults(t *testing.T) {
	store := newFakeStore()
	seedCustomerDoc(t, store, "c1", "Zomato")
	seedUser(t, store, "csm-1", "Priya Sharma")
	seedUser(t, store, "csm-2", "Rajesh Kumar")
	router := taskRouter(store)

	w := performJSON(t, router, http.MethodPost, "/api/tasks", map[string]interface{}{
		"customer_id":    "c1",
		"task_type":      "Follow-up Call",
		"title":          "Check in after QBR",
		"assigned_to_id": "csm-2",
		"due_date":       "2026-09-10",
	})
	requireStatus(t, w, http.StatusOK)

	var task models.Task
	decodeBody(t, w, &task)

	if task.Priority != models.TaskPriorityMedium {
		t.Errorf("expected default Medium priority, got %v", task.Priority)
	}
	if task.Status != models.TaskStatusNotStarted {
		t.Errorf("expected default Not Started, got %v", task.Status)
	}
	if task.CreatedByID != "csm-1" || task.CreatedByName != "Priya Sharma" {
		t.Errorf("expected creator from token, got %q/%q", task.CreatedByID, task.CreatedByName)
	}
	if task.AssignedToName != "Rajesh Kumar" {
		t.Errorf("expected resolved assignee, got %q", task.AssignedToName)
	}
	if task.CustomerName != "Zomato" {
		t.Errorf("expected denormalized customer name, got %q", task.CustomerName)
	}
	if task.CompletedDate != "" {
		t.Errorf("new task must have no completed_date, got %q", task.CompletedDate)
	}
}

func TestTaskCreateUnknownCustomer(t *testing.T) {
	router := taskRouter(newFakeStore())

	w := performJSON(t, router, http.MethodPost, "/api/tasks", map[string]interface{}{
		"customer_id":    "missing",
		"task_type":      "Follow-up Call",
		"title":          "Check in",
		"assigned_to_id": "csm-1",
		"due_date":       "2026-09-10",
	})
	requireStatus(t, w, http.StatusNotFound)
}

func TestTaskCompletionStampsDate(t *testing.T) {
	store := newFakeStore()
	seedCustomerDoc(t, store, "c1", "Zomato")
	router := taskRouter(store)

	w := performJSON(t, router, http.MethodPost, "/api/tasks", map[string]interface{}{
		"customer_id":    "c1",
		"task_type":      "Renewal Planning",
		"title":          "Prepare renewal deck",
		"assigned_to_id": "csm-1",
		"due_date":       "2026-09-10",
	})
	requireStatus(t, w, http.StatusOK)
	var task models.Task
	decodeBody(t, w, &task)

	w = performJSON(t, router, http.MethodPut, "/api/tasks/"+task.ID, map[string]interface{}{
		"status": "Completed",
	})
	requireStatus(t, w, http.StatusOK)

	var completed models.Task
	decodeBody(t, w, &completed)

	if completed.Status != models.TaskStatusCompleted {
		t.Fatalf("expected Completed, got %v", completed.Status)
	}
	if completed.CompletedDate != utils.Today() {
		t.Errorf("expected completed_date stamped today, got %q", completed.CompletedDate)
	}

	firstStamp := completed.CompletedDate

	// A second update that stays Completed must not restamp.
	w = performJSON(t, router, http.MethodPut, "/api/tasks/"+task.ID, map[string]interface{}{
		"status":      "Completed",
		"description": "done early",
	})
	requireStatus(t, w, http.StatusOK)

	var again models.Task
	decodeBody(t, w, &again)
	if again.CompletedDate != firstStamp {
		t.Errorf("completed_date must not move on repeat update: %q vs %q", again.CompletedDate, firstStamp)
	}
}

func TestTaskListFilters(t *testing.T) {
	store := newFakeStore()
	now := utils.NowUTC()

	insert(t, store, repository.TasksCollection, models.Task{
		ID: "t1", CustomerID: "c1", AssignedToID: "csm-1",
		Status: models.TaskStatusInProgress, DueDate: "2026-09-03", CreatedAt: now, UpdatedAt: now,
	})
	insert(t, store, repository.TasksCollection, models.Task{
		ID: "t2", CustomerID: "c1", AssignedToID: "csm-2",
		Status: models.TaskStatusNotStarted, DueDate: "2026-09-01", CreatedAt: now, UpdatedAt: now,
	})
	insert(t, store, repository.TasksCollection, models.Task{
		ID: "t3", CustomerID: "c2", AssignedToID: "csm-1",
		Status: models.TaskStatusInProgress, DueDate: "2026-09-02", CreatedAt: now, UpdatedAt: now,
	})

	router := taskRouter(store)

	w := performJSON(t, router, http.MethodGet, "/api/tasks", nil)
	requireStatus(t, w, http.StatusOK)
	var all []models.Task
	decodeBody(t, w, &all)
	if len(all) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(all))
	}
	if all[0].ID != "t2" || all[1].ID != "t3" || all[2].ID != "t1" {
		t.Errorf("expected due-date order t2,t3,t1, got %s,%s,%s", all[0].ID, all[1].ID, all[2].ID)
	}

	w = performJSON(t, router, http.MethodGet, "/api/tasks?customer_id=c1", nil)
	requireStatus(t, w, http.StatusOK)
	var byCustomer []models.Task
	decodeBody(t, w, &byCustomer)
	if len(byCustomer) != 2 {
		t.Errorf("expected 2 tasks for c1, got %d", len(byCustomer))
	}

	w = performJSON(t, router, http.MethodGet, "/api/tasks?assigned_to_id=csm-1&status=In+Progress", nil)
	requireStatus(t, w, http.StatusOK)
	var mine []models.Task
	decodeBody(t, w, &mine)
	if len(mine) != 2 {
		t.Errorf("expected 2 in-progress tasks for csm-1, got %d", len(mine))
	}
}

func TestTaskDelete(t *testing.T) {
	store := newFakeStore()
	now := utils.NowUTC()
	insert(t, store, repository.TasksCollection, models.Task{
		ID: "t1", CustomerID: "c1", AssignedToID: "csm-1",
		Status: models.TaskStatusNotStarted, DueDate: "2026-09-01", CreatedAt: now, UpdatedAt: now,
	})

	router := taskRouter(store)

	w := performJSON(t, router, http.MethodDelete, "/api/tasks/t1", nil)
	requireStatus(t, w, http.StatusOK)

	w = performJSON(t, router, http.MethodDelete, "/api/tasks/t1", nil)
	requireStatus(t, w, http.StatusNotFound)
}
