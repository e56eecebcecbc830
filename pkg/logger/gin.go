package logger

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Gin logs one line per request: method, path, status, latency and client IP.
// 5xx responses are logged at error level, 4xx at warn, the rest at info.
func Gin() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			Errorf("%s %s -> %d (%s) ip=%s errors=%q", c.Request.Method, path, status, latency, c.ClientIP(), c.Errors.String())
		case status >= 400:
			Warnf("%s %s -> %d (%s) ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		default:
			Infof("%s %s -> %d (%s) ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		}
	}
}
