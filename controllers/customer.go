package controllers

import (
	"context"
	"net/http"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"
	"github.com/convin-ai/csm-backend/service"
	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// CustomerController handles customer CRUD and the health override.
type CustomerController struct {
	store repository.Store
}

// NewCustomerController builds a CustomerController on the given store.
func NewCustomerController(store repository.Store) *CustomerController {
	return &CustomerController{store: store}
}

// lookupUserName resolves a user's display name by id. A missing user
// yields an empty name, not an error: owner references are soft.
func lookupUserName(ctx context.Context, store repository.Store, userID string) string {
	if userID == "" {
		return ""
	}
	var user models.User
	if err := store.FindOne(ctx, repository.UsersCollection, bson.M{"id": userID}, &user); err != nil {
		return ""
	}
	return user.Name
}

// Create validates and persists a new customer, scoring it from the posted
// signals.
func (cc *CustomerController) Create(c *gin.Context) {
	var req models.CustomerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request: "+err.Error()))
		return
	}

	ctx := c.Request.Context()
	now := utils.NowUTC()

	if req.OnboardingStatus == "" {
		req.OnboardingStatus = models.OnboardingNotStarted
	}
	if req.ProductsPurchased == nil {
		req.ProductsPurchased = []string{}
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}
	if req.Stakeholders == nil {
		req.Stakeholders = []models.Stakeholder{}
	}

	customer := models.Customer{
		ID:                 utils.NewID(),
		CompanyName:        req.CompanyName,
		Website:            req.Website,
		Industry:           req.Industry,
		Region:             req.Region,
		PlanType:           req.PlanType,
		ARR:                req.ARR,
		ContractStartDate:  req.ContractStartDate,
		ContractEndDate:    req.ContractEndDate,
		RenewalDate:        req.RenewalDate,
		GoLiveDate:         req.GoLiveDate,
		ProductsPurchased:  req.ProductsPurchased,
		OnboardingStatus:   req.OnboardingStatus,
		PrimaryObjective:   req.PrimaryObjective,
		CallsProcessed:     req.CallsProcessed,
		ActiveUsers:        req.ActiveUsers,
		TotalLicensedUsers: req.TotalLicensedUsers,
		CSMOwnerID:         req.CSMOwnerID,
		CSMOwnerName:       lookupUserName(ctx, cc.store, req.CSMOwnerID),
		AMOwnerID:          req.AMOwnerID,
		AMOwnerName:        lookupUserName(ctx, cc.store, req.AMOwnerID),
		Tags:               req.Tags,
		Stakeholders:       req.Stakeholders,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	customer.HealthScore = service.CalculateHealthScore(service.SignalsFromCustomer(customer))
	customer.HealthStatus = service.DetermineHealthStatus(customer.HealthScore)

	if err := cc.store.Insert(ctx, repository.CustomersCollection, customer); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"id":           customer.ID,
		"company_name": customer.CompanyName,
		"health_score": customer.HealthScore,
	}, "customer created")

	c.JSON(http.StatusOK, customer)
}

// List returns all customers.
func (cc *CustomerController) List(c *gin.Context) {
	var customers []models.Customer
	if err := cc.store.FindAll(c.Request.Context(), repository.CustomersCollection, bson.M{}, nil, &customers); err != nil {
		utils.HandleError(c, err)
		return
	}

	if customers == nil {
		customers = []models.Customer{}
	}

	c.JSON(http.StatusOK, customers)
}

// Get returns one customer by id.
func (cc *CustomerController) Get(c *gin.Context) {
	var customer models.Customer
	err := cc.store.FindOne(c.Request.Context(), repository.CustomersCollection, bson.M{"id": c.Param("id")}, &customer)
	if err == repository.ErrNotFound {
		utils.HandleError(c, utils.NewNotFoundError("Customer"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Update merges the posted fields into the stored record, re-resolves
// denormalized owner names when the references changed, and rescores.
// Signals absent from the body keep their stored values.
func (cc *CustomerController) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request: "+err.Error()))
		return
	}

	ctx := c.Request.Context()

	var customer models.Customer
	err := cc.store.FindOne(ctx, repository.CustomersCollection, bson.M{"id": id}, &customer)
	if err == repository.ErrNotFound {
		utils.HandleError(c, utils.NewNotFoundError("Customer"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	applyCustomerUpdate(&customer, req)

	if req.CSMOwnerID != nil {
		customer.CSMOwnerName = lookupUserName(ctx, cc.store, customer.CSMOwnerID)
	}
	if req.AMOwnerID != nil {
		customer.AMOwnerName = lookupUserName(ctx, cc.store, customer.AMOwnerID)
	}

	customer.HealthScore = service.CalculateHealthScore(service.SignalsFromCustomer(customer))
	customer.HealthStatus = service.DetermineHealthStatus(customer.HealthScore)
	customer.UpdatedAt = utils.NowUTC()

	if err := cc.store.UpdateOne(ctx, repository.CustomersCollection, bson.M{"id": id}, customer); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"id":            id,
		"health_score":  customer.HealthScore,
		"health_status": customer.HealthStatus,
	}, "customer updated")

	c.JSON(http.StatusOK, customer)
}

// Delete removes a customer.
func (cc *CustomerController) Delete(c *gin.Context) {
	id := c.Param("id")

	err := cc.store.DeleteOne(c.Request.Context(), repository.CustomersCollection, bson.M{"id": id})
	if err == repository.ErrNotFound {
		utils.HandleError(c, utils.NewNotFoundError("Customer"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{"id": id}, "customer deleted")

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// UpdateHealth is the manual override: the chosen status forward-derives
// its canonical score instead of recomputing from signals. A later
// signal-driven update re-derives both fields and may overwrite this.
func (cc *CustomerController) UpdateHealth(c *gin.Context) {
	id := c.Param("id")

	var req models.HealthStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request: "+err.Error()))
		return
	}

	ctx := c.Request.Context()

	var customer models.Customer
	err := cc.store.FindOne(ctx, repository.CustomersCollection, bson.M{"id": id}, &customer)
	if err == repository.ErrNotFound {
		utils.HandleError(c, utils.NewNotFoundError("Customer"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	score := service.ScoreForStatus(req.HealthStatus, customer.HealthScore)

	set := bson.M{
		"health_status": req.HealthStatus,
		"health_score":  score,
		"updated_at":    utils.NowUTC(),
	}

	if err := cc.store.UpdateOne(ctx, repository.CustomersCollection, bson.M{"id": id}, set); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"id":            id,
		"health_status": req.HealthStatus,
		"health_score":  score,
	}, "customer health overridden")

	c.JSON(http.StatusOK, models.HealthStatusUpdateResponse{
		Message:      "Health status updated",
		HealthStatus: req.HealthStatus,
		HealthScore:  score,
	})
}

func applyCustomerUpdate(customer *models.Customer, req models.CustomerUpdateRequest) {
	if req.CompanyName != nil {
		customer.CompanyName = *req.CompanyName
	}
	if req.Website != nil {
		customer.Website = *req.Website
	}
	if req.Industry != nil {
		customer.Industry = *req.Industry
	}
	if req.Region != nil {
		customer.Region = *req.Region
	}
	if req.PlanType != nil {
		customer.PlanType = *req.PlanType
	}
	if req.ARR != nil {
		customer.ARR = *req.ARR
	}
	if req.ContractStartDate != nil {
		customer.ContractStartDate = *req.ContractStartDate
	}
	if req.ContractEndDate != nil {
		customer.ContractEndDate = *req.ContractEndDate
	}
	if req.RenewalDate != nil {
		customer.RenewalDate = *req.RenewalDate
	}
	if req.GoLiveDate != nil {
		customer.GoLiveDate = *req.GoLiveDate
	}
	if req.ProductsPurchased != nil {
		customer.ProductsPurchased = *req.ProductsPurchased
	}
	if req.OnboardingStatus != nil {
		customer.OnboardingStatus = *req.OnboardingStatus
	}
	if req.PrimaryObjective != nil {
		customer.PrimaryObjective = *req.PrimaryObjective
	}
	if req.CallsProcessed != nil {
		customer.CallsProcessed = *req.CallsProcessed
	}
	if req.ActiveUsers != nil {
		customer.ActiveUsers = *req.ActiveUsers
	}
	if req.TotalLicensedUsers != nil {
		customer.TotalLicensedUsers = *req.TotalLicensedUsers
	}
	if req.CSMOwnerID != nil {
		customer.CSMOwnerID = *req.CSMOwnerID
	}
	if req.AMOwnerID != nil {
		customer.AMOwnerID = *req.AMOwnerID
	}
	if req.Tags != nil {
		customer.Tags = *req.Tags
	}
	if req.Stakeholders != nil {
		customer.Stakeholders = *req.Stakeholders
	}
}
