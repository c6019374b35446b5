// Package middleware provides gin middleware for the course-admin web server.
package middleware

import (
	"time"

	"course-admin/logger"

	"github.com/gin-gonic/gin"
)

// RequestLog logs method, path, status and duration of every request.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debugf("%s %s %d %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start))
	}
}
