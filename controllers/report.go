package controllers

import (
	"net/http"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"
	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// ReportController registers Data Labs report deliverables.
type ReportController struct {
	store repository.Store
}

// NewReportController builds a ReportController on the given store.
func NewReportController(store repository.Store) *ReportController {
	return &ReportController{store: store}
}

// Create registers a report deliverable against a customer.
func (rc *ReportController) Create(c *gin.Context) {
	var req models.ReportCreateRequest
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

	caller, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if req.SentTo == nil {
		req.SentTo = []string{}
	}

	report := models.DataLabsReport{
		ID:            utils.NewID(),
		CustomerID:    customer.ID,
		CustomerName:  customer.CompanyName,
		ReportDate:    req.ReportDate,
		ReportTitle:   req.ReportTitle,
		ReportLink:    req.ReportLink,
		ReportType:    req.ReportType,
		Description:   req.Description,
		SentTo:        req.SentTo,
		CreatedByID:   caller.ID,
		CreatedByName: lookupUserName(ctx, rc.store, caller.ID),
		CreatedAt:     utils.NowUTC(),
	}

	if err := rc.store.Insert(ctx, repository.ReportsCollection, report); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"id":          report.ID,
		"customer_id": report.CustomerID,
		"report_type": report.ReportType,
	}, "report created")

	c.JSON(http.StatusOK, report)
}

// List returns reports, newest report date first, optionally scoped to a
// customer.
func (rc *ReportController) List(c *gin.Context) {
	filter := bson.M{}
	if customerID := c.Query("customer_id"); customerID != "" {
		filter["customer_id"] = customerID
	}

	sort := bson.D{{Key: "report_date", Value: -1}}

	var reports []models.DataLabsReport
	if err := rc.store.FindAll(c.Request.Context(), repository.ReportsCollection, filter, sort, &reports); err != nil {
		utils.HandleError(c, err)
		return
	}

	if reports == nil {
		reports = []models.DataLabsReport{}
	}

	c.JSON(http.StatusOK, reports)
}
