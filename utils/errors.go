package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiError is an error carrying the HTTP status it should be reported with.
// All error responses use a {"detail": message} body.
type ApiError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *ApiError) Error() string {
	return e.Message
}

// NewApiError creates an API error.
func NewApiError(message string, statusCode int) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewValidationError reports a malformed or missing request field.
func NewValidationError(message string) *ApiError {
	return NewApiError(message, http.StatusBadRequest)
}

// NewAuthError reports missing, invalid or expired credentials.
func NewAuthError(message string) *ApiError {
	return NewApiError(message, http.StatusUnauthorized)
}

// NewNotFoundError reports an absent entity.
func NewNotFoundError(resource string) *ApiError {
	return NewApiError(resource+" not found", http.StatusNotFound)
}

// NewConflictError reports a duplicate unique field. Surfaced as 400 to
// match the API contract.
func NewConflictError(message string) *ApiError {
	return NewApiError(message, http.StatusBadRequest)
}

// HandleError logs err and writes the matching error response. Errors that
// are not ApiError become a 500.
func HandleError(c *gin.Context, err error) {
	if c == nil {
		return
	}

	LogError(err, map[string]interface{}{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	}, "api error")

	if apiErr, ok := err.(*ApiError); ok {
		c.JSON(apiErr.StatusCode, gin.H{"detail": apiErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}

// ErrorResponse writes a {"detail": message} body with the given status.
func ErrorResponse(c *gin.Context, message string, statusCode int) {
	c.JSON(statusCode, gin.H{"detail": message})
}
