package controllers

import (
	"net/http"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"
	"github.com/convin-ai/csm-backend/service"
	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// TaskController handles follow-up tasks.
type TaskController struct {
	store repository.Store
}

// NewTaskController builds a TaskController on the given store.
func NewTaskController(store repository.Store) *TaskController {
	return &TaskController{store: store}
}

// Create adds a task. Priority defaults to Medium and status to Not Started
// when the client leaves them blank; created_by comes from the token.
func (tc *TaskController) Create(c *gin.Context) {
	var req models.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request: "+err.Error()))
		return
	}

	ctx := c.Request.Context()

	var customer models.Customer
	err := tc.store.FindOne(ctx, repository.CustomersCollection, bson.M{"id": req.CustomerID}, &customer)
	if err == repository.ErrNotFound {
		utils.HandleError(c, utils.NewNotFoundError("Customer"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	caller, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if req.Priority == "" {
		req.Priority = models.TaskPriorityMedium
	}
	if req.Status == "" {
		req.Status = models.TaskStatusNotStarted
	}

	now := utils.NowUTC()

	task := models.Task{
		ID:             utils.NewID(),
		CustomerID:     customer.ID,
		CustomerName:   customer.CompanyName,
		TaskType:       req.TaskType,
		Title:          req.Title,
		Description:    req.Description,
		Priority:       req.Priority,
		Status:         req.Status,
		AssignedToID:   req.AssignedToID,
		AssignedToName: lookupUserName(ctx, tc.store, req.AssignedToID),
		DueDate:        req.DueDate,
		CreatedByID:    caller.ID,
		CreatedByName:  lookupUserName(ctx, tc.store, caller.ID),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := tc.store.Insert(ctx, repository.TasksCollection, task); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"id":          task.ID,
		"customer_id": task.CustomerID,
		"due_date":    task.DueDate,
	}, "task created")

	c.JSON(http.StatusOK, task)
}

// List returns tasks ordered by due date, optionally filtered by customer,
// assignee, or status.
func (tc *TaskController) List(c *gin.Context) {
	filter := bson.M{}
	if customerID := c.Query("customer_id"); customerID != "" {
		filter["customer_id"] = customerID
	}
	if assignedToID := c.Query("assigned_to_id"); assignedToID != "" {
		filter["assigned_to_id"] = assignedToID
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	sort := bson.D{{Key: "due_date", Value: 1}}

	var tasks []models.Task
	if err := tc.store.FindAll(c.Request.Context(), repository.TasksCollection, filter, sort, &tasks); err != nil {
		utils.HandleError(c, err)
		return
	}

	if tasks == nil {
		tasks = []models.Task{}
	}

	c.JSON(http.StatusOK, tasks)
}

// Update merges the posted fields into the stored task. A transition into
// Completed stamps completed_date with today's date; any other status change
// leaves it untouched.
func (tc *TaskController) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request: "+err.Error()))
		return
	}

	ctx := c.Request.Context()

	var task models.Task
	err := tc.store.FindOne(ctx, repository.TasksCollection, bson.M{"id": id}, &task)
	if err == repository.ErrNotFound {
		utils.HandleError(c, utils.NewNotFoundError("Task"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	previousStatus := task.Status

	applyTaskUpdate(&task, req)

	if req.AssignedToID != nil {
		task.AssignedToName = lookupUserName(ctx, tc.store, task.AssignedToID)
	}

	if completed, ok := service.CompletionDate(previousStatus, task.Status, utils.Today()); ok {
		task.CompletedDate = completed
	}

	task.UpdatedAt = utils.NowUTC()

	if err := tc.store.UpdateOne(ctx, repository.TasksCollection, bson.M{"id": id}, task); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"id":     id,
		"status": task.Status,
	}, "task updated")

	c.JSON(http.StatusOK, task)
}

// Delete removes a task.
func (tc *TaskController) Delete(c *gin.Context) {
	id := c.Param("id")

	err := tc.store.DeleteOne(c.Request.Context(), repository.TasksCollection, bson.M{"id": id})
	if err == repository.ErrNotFound {
		utils.HandleError(c, utils.NewNotFoundError("Task"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{"id": id}, "task deleted")

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func applyTaskUpdate(task *models.Task, req models.TaskUpdateRequest) {
	if req.TaskType != nil {
		task.TaskType = *req.TaskType
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.AssignedToID != nil {
		task.AssignedToID = *req.AssignedToID
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
}
