package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records the outcome of one HTTP request.
type RequestObserver interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

// Metrics returns middleware that captures request metrics using the provided observer.
// Requests whose path starts with one of skip are not recorded.
func Metrics(observer RequestObserver, skip ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if observer == nil || skipped(c.Request.URL.Path, skip) {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()
		// Route templates keep label cardinality bounded; unmatched paths share one label.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		observer.ObserveHTTPRequest(c.Request.Method, path, status, duration)
	}
}

func skipped(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
