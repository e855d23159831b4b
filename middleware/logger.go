package middleware

import (
	"time"

	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
)

// Logger records every request and its response status.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		headers := make(map[string]string)
		for k, v := range c.Request.Header {
			if len(v) > 0 {
				headers[k] = v[0]
			}
		}

		utils.LogApiRequest(method, path, c.Request.URL.Query(), nil, headers)

		c.Next()

		utils.LogApiResponse(method, path, c.Writer.Status(), time.Since(start))
	}
}

// Recovery turns panics into logged 500 responses.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.Logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("handler panic")

		c.AbortWithStatusJSON(500, gin.H{"detail": "Internal server error"})
	})
}
