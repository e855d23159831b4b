package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"
	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuditLogger appends a record for every mutating request to the audit_logs
// collection. Best effort: a failed insert is logged, never surfaced.
func AuditLogger(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		entry := models.AuditLog{
			ID:         utils.NewID(),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			DurationMs: time.Since(start).Milliseconds(),
			CreatedAt:  utils.NowUTC(),
		}

		if user, err := utils.GetUser(c); err == nil {
			entry.UserID = user.ID
			entry.UserEmail = user.Email
		}

		if err := store.Insert(context.Background(), repository.AuditLogsCollection, entry); err != nil {
			utils.LogError(err, map[string]interface{}{
				"path":   entry.Path,
				"method": entry.Method,
			}, "audit log write failed")
		}
	}
}
