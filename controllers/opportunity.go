package controllers

import (
	"net/http"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"
	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// defaultOpportunityStage is the pipeline entry point for new opportunities.
const defaultOpportunityStage = "Identified"

// OpportunityController tracks expansion and renewal pipeline entries.
type OpportunityController struct {
	store repository.Store
}

// NewOpportunityController builds an OpportunityController on the given store.
func NewOpportunityController(store repository.Store) *OpportunityController {
	return &OpportunityController{store: store}
}

// Create opens a pipeline entry.
func (oc *OpportunityController) Create(c *gin.Context) {
	var req models.OpportunityCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request: "+err.Error()))
		return
	}

	ctx := c.Request.Context()

	var customer models.Customer
	err := oc.store.FindOne(ctx, repository.CustomersCollection, bson.M{"id": req.CustomerID}, &customer)
	if err == repository.ErrNotFound {
		utils.HandleError(c, utils.NewNotFoundError("Customer"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if req.Stage == "" {
		req.Stage = defaultOpportunityStage
	}

	now := utils.NowUTC()

	opportunity := models.Opportunity{
		ID:                utils.NewID(),
		CustomerID:        customer.ID,
		CustomerName:      customer.CompanyName,
		OpportunityType:   req.OpportunityType,
		Title:             req.Title,
		Description:       req.Description,
		Value:             req.Value,
		Probability:       req.Probability,
		Stage:             req.Stage,
		ExpectedCloseDate: req.ExpectedCloseDate,
		OwnerID:           req.OwnerID,
		OwnerName:         lookupUserName(ctx, oc.store, req.OwnerID),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := oc.store.Insert(ctx, repository.OpportunitiesCollection, opportunity); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"id":          opportunity.ID,
		"customer_id": opportunity.CustomerID,
		"value":       opportunity.Value,
	}, "opportunity created")

	c.JSON(http.StatusOK, opportunity)
}

// List returns opportunities, newest first, optionally scoped to a customer.
func (oc *OpportunityController) List(c *gin.Context) {
	filter := bson.M{}
	if customerID := c.Query("customer_id"); customerID != "" {
		filter["customer_id"] = customerID
	}

	sort := bson.D{{Key: "created_at", Value: -1}}

	var opportunities []models.Opportunity
	if err := oc.store.FindAll(c.Request.Context(), repository.OpportunitiesCollection, filter, sort, &opportunities); err != nil {
		utils.HandleError(c, err)
		return
	}

	if opportunities == nil {
		opportunities = []models.Opportunity{}
	}

	c.JSON(http.StatusOK, opportunities)
}
