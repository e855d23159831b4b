package middleware

import (
	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the context into responses when
// no handler wrote one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}

		if len(c.Errors) > 0 {
			utils.HandleError(c, c.Errors.Last().Err)
		}
	}
}
