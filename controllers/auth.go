package controllers

import (
	"net/http"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"
	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// AuthController handles registration, login and session introspection.
type AuthController struct {
	store repository.Store
}

// NewAuthController builds an AuthController on the given store.
func NewAuthController(store repository.Store) *AuthController {
	return &AuthController{store: store}
}

// Register creates a user account and returns a session token.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request: "+err.Error()))
		return
	}

	if req.Role == "" {
		req.Role = models.UserRoleCSM
	}

	ctx := c.Request.Context()

	var existing models.User
	err := ac.store.FindOne(ctx, repository.UsersCollection, bson.M{"email": req.Email}, &existing)
	if err == nil {
		utils.HandleError(c, utils.NewConflictError("Email already registered"))
		return
	}
	if err != repository.ErrNotFound {
		utils.HandleError(c, err)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	user := models.User{
		ID:        utils.NewID(),
		Email:     req.Email,
		Name:      req.Name,
		Role:      req.Role,
		Password:  hashed,
		CreatedAt: utils.NowUTC(),
	}

	if err := ac.store.Insert(ctx, repository.UsersCollection, user); err != nil {
		utils.HandleError(c, err)
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"email": user.Email,
		"role":  user.Role,
	}, "user registered")

	c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// Login authenticates a user and returns a session token.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request: "+err.Error()))
		return
	}

	var user models.User
	err := ac.store.FindOne(c.Request.Context(), repository.UsersCollection, bson.M{"email": req.Email}, &user)
	if err == repository.ErrNotFound || (err == nil && !utils.VerifyPassword(req.Password, user.Password)) {
		utils.HandleError(c, utils.NewAuthError("Invalid credentials"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{"email": user.Email}, "user logged in")

	c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// Me returns the authenticated user's record.
func (ac *AuthController) Me(c *gin.Context) {
	caller, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var user models.User
	err = ac.store.FindOne(c.Request.Context(), repository.UsersCollection, bson.M{"id": caller.ID}, &user)
	if err == repository.ErrNotFound {
		utils.HandleError(c, utils.NewNotFoundError("User"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
