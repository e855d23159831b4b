package controllers

import (
	"net/http"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"
	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// UserController lists team members for owner assignment pickers.
type UserController struct {
	store repository.Store
}

// NewUserController builds a UserController on the given store.
func NewUserController(store repository.Store) *UserController {
	return &UserController{store: store}
}

// List returns all users.
func (uc *UserController) List(c *gin.Context) {
	var users []models.User
	if err := uc.store.FindAll(c.Request.Context(), repository.UsersCollection, bson.M{}, nil, &users); err != nil {
		utils.HandleError(c, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	c.JSON(http.StatusOK, users)
}
