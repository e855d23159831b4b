package controllers

import (
	"net/http"
	"time"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"
	"github.com/convin-ai/csm-backend/service"
	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// ActivityController records and lists customer touchpoints.
type ActivityController struct {
	store repository.Store
}

// NewActivityController builds an ActivityController on the given store.
func NewActivityController(store repository.Store) *ActivityController {
	return &ActivityController{store: store}
}

// Create records a touchpoint and stamps the customer's last_activity_date.
// The stamp feeds the recency bucket the next time the customer is rescored;
// scoring itself only runs on customer create and update.
func (ac *ActivityController) Create(c *gin.Context) {
	var req models.ActivityCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request: "+err.Error()))
		return
	}

	ctx := c.Request.Context()

	var customer models.Customer
	err := ac.store.FindOne(ctx, repository.CustomersCollection, bson.M{"id": req.CustomerID}, &customer)
	if err == repository.ErrNotFound {
		utils.HandleError(c, utils.NewNotFoundError("Customer"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	activityDate, ok := service.ParseActivityDate(req.ActivityDate)
	if !ok {
		utils.HandleError(c, utils.NewValidationError("invalid activity_date"))
		return
	}

	caller, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	now := utils.NowUTC()

	activity := models.Activity{
		ID:               utils.NewID(),
		CustomerID:       customer.ID,
		CustomerName:     customer.CompanyName,
		ActivityType:     req.ActivityType,
		ActivityDate:     activityDate,
		Title:            req.Title,
		Summary:          req.Summary,
		InternalNotes:    req.InternalNotes,
		Sentiment:        req.Sentiment,
		FollowUpRequired: req.FollowUpRequired,
		FollowUpDate:     req.FollowUpDate,
		CSMID:            caller.ID,
		CSMName:          lookupUserName(ctx, ac.store, caller.ID),
		CreatedAt:        now,
	}

	if activity.FollowUpRequired {
		activity.FollowUpStatus = "Pending"
	}

	if err := ac.store.Insert(ctx, repository.ActivitiesCollection, activity); err != nil {
		utils.HandleError(c, err)
		return
	}

	set := bson.M{"last_activity_date": now.Format(time.RFC3339)}
	if err := ac.store.UpdateOne(ctx, repository.CustomersCollection, bson.M{"id": customer.ID}, set); err != nil {
		utils.LogError(err, map[string]interface{}{"customer_id": customer.ID}, "activity recency stamp failed")
	}

	utils.LogInfo(map[string]interface{}{
		"id":          activity.ID,
		"customer_id": activity.CustomerID,
		"type":        activity.ActivityType,
	}, "activity created")

	c.JSON(http.StatusOK, activity)
}

// List returns activities, newest first, optionally scoped to a customer.
func (ac *ActivityController) List(c *gin.Context) {
	filter := bson.M{}
	if customerID := c.Query("customer_id"); customerID != "" {
		filter["customer_id"] = customerID
	}

	sort := bson.D{{Key: "activity_date", Value: -1}}

	var activities []models.Activity
	if err := ac.store.FindAll(c.Request.Context(), repository.ActivitiesCollection, filter, sort, &activities); err != nil {
		utils.HandleError(c, err)
		return
	}

	if activities == nil {
		activities = []models.Activity{}
	}

	c.JSON(http.StatusOK, activities)
}
