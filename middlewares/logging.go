// simple request logging

package middlewares

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger prints method, path, status, size and duration for each request.
// The query string is left out: download links carry their token there.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // keep before c.Next(), handlers may rewrite
		c.Next()
		log.Printf("[http] %s %s %d %dB %s",
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start))
	}
}
