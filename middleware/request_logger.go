package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each HTTP request with its status and duration.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		log.Printf("%s %s -> %d (%dms) query=%q ip=%s",
			c.Request.Method,
			c.Request.URL.Path,
			status,
			duration.Milliseconds(),
			c.Request.URL.RawQuery,
			c.ClientIP(),
		)
	}
}
