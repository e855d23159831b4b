package controllers

import (
	"net/http"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"
	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// RiskController tracks churn and revenue threats against customers.
type RiskController struct {
	store repository.Store
}

// NewRiskController builds a RiskController on the given store.
func NewRiskController(store repository.Store) *RiskController {
	return &RiskController{store: store}
}

// Create opens a new risk. Every risk starts in the Open status regardless
// of what the client sends.
func (rc *RiskController) Create(c *gin.Context) {
	var req models.RiskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request: "+err.Error()))
		return
	}

	ctx := c.Request.Context()

	var customer models.Customer
	err := rc.store.FindOne(ctx, repository.CustomersCollection, bson.M{"id": req.CustomerID}, &customer)
	if err == repository.ErrNotFound {
		utils.HandleError(c, utils.NewNotFoundError("Customer"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	now := utils.NowUTC()

	risk := models.Risk{
		ID:                   utils.NewID(),
		CustomerID:           customer.ID,
		CustomerName:         customer.CompanyName,
		Category:             req.Category,
		Subcategory:          req.Subcategory,
		Severity:             req.Severity,
		Status:               models.RiskStatusOpen,
		Title:                req.Title,
		Description:          req.Description,
		ImpactDescription:    req.ImpactDescription,
		MitigationPlan:       req.MitigationPlan,
		RevenueImpact:        req.RevenueImpact,
		ChurnProbability:     req.ChurnProbability,
		IdentifiedDate:       req.IdentifiedDate,
		TargetResolutionDate: req.TargetResolutionDate,
		AssignedToID:         req.AssignedToID,
		AssignedToName:       lookupUserName(ctx, rc.store, req.AssignedToID),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := rc.store.Insert(ctx, repository.RisksCollection, risk); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"id":          risk.ID,
		"customer_id": risk.CustomerID,
		"severity":    risk.Severity,
	}, "risk created")

	c.JSON(http.StatusOK, risk)
}

// List returns risks, newest first, optionally scoped to a customer.
func (rc *RiskController) List(c *gin.Context) {
	filter := bson.M{}
	if customerID := c.Query("customer_id"); customerID != "" {
		filter["customer_id"] = customerID
	}

	sort := bson.D{{Key: "created_at", Value: -1}}

	var risks []models.Risk
	if err := rc.store.FindAll(c.Request.Context(), repository.RisksCollection, filter, sort, &risks); err != nil {
		utils.HandleError(c, err)
		return
	}

	if risks == nil {
		risks = []models.Risk{}
	}

	c.JSON(http.StatusOK, risks)
}

// Update merges the posted fields into the stored risk. Fields absent from
// the body keep their stored values.
func (rc *RiskController) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.RiskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request: "+err.Error()))
		return
	}

	ctx := c.Request.Context()

	var risk models.Risk
	err := rc.store.FindOne(ctx, repository.RisksCollection, bson.M{"id": id}, &risk)
	if err == repository.ErrNotFound {
		utils.HandleError(c, utils.NewNotFoundError("Risk"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	applyRiskUpdate(&risk, req)

	if req.AssignedToID != nil {
		risk.AssignedToName = lookupUserName(ctx, rc.store, risk.AssignedToID)
	}

	risk.UpdatedAt = utils.NowUTC()

	if err := rc.store.UpdateOne(ctx, repository.RisksCollection, bson.M{"id": id}, risk); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"id":     id,
		"status": risk.Status,
	}, "risk updated")

	c.JSON(http.StatusOK, risk)
}

func applyRiskUpdate(risk *models.Risk, req models.RiskUpdateRequest) {
	if req.Category != nil {
		risk.Category = *req.Category
	}
	if req.Subcategory != nil {
		risk.Subcategory = *req.Subcategory
	}
	if req.Severity != nil {
		risk.Severity = *req.Severity
	}
	if req.Status != nil {
		risk.Status = *req.Status
	}
	if req.Title != nil {
		risk.Title = *req.Title
	}
	if req.Description != nil {
		risk.Description = *req.Description
	}
	if req.ImpactDescription != nil {
		risk.ImpactDescription = *req.ImpactDescription
	}
	if req.MitigationPlan != nil {
		risk.MitigationPlan = *req.MitigationPlan
	}
	if req.RevenueImpact != nil {
		risk.RevenueImpact = *req.RevenueImpact
	}
	if req.ChurnProbability != nil {
		risk.ChurnProbability = *req.ChurnProbability
	}
	if req.IdentifiedDate != nil {
		risk.IdentifiedDate = *req.IdentifiedDate
	}
	if req.TargetResolutionDate != nil {
		risk.TargetResolutionDate = *req.TargetResolutionDate
	}
	if req.ResolutionDate != nil {
		risk.ResolutionDate = *req.ResolutionDate
	}
	if req.AssignedToID != nil {
		risk.AssignedToID = *req.AssignedToID
	}
}
