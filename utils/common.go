package utils

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NewID returns a new opaque entity identifier.
func NewID() string {
	return uuid.NewString()
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Today returns today's date in ISO form (UTC), the format used for
// due_date and completed_date comparisons.
func Today() string {
	return NowUTC().Format("2006-01-02")
}

// LoginUser is the authenticated caller extracted from the request context.
type LoginUser struct {
	ID    string `json:"user_id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// GetUser reads the authenticated user stored by the auth middleware.
func GetUser(c *gin.Context) (*LoginUser, error) {
	currentUser, exists := c.Get("user")
	if !exists {
		return nil, NewAuthError("not authenticated")
	}

	claims, ok := currentUser.(jwt.MapClaims)
	if !ok {
		return nil, NewAuthError("invalid token payload")
	}

	id, ok := claims["user_id"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid user id in token")
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid email in token")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid role in token")
	}

	return &LoginUser{
		ID:    id,
		Email: email,
		Role:  role,
	}, nil
}
