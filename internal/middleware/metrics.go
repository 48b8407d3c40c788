package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/metrics"
)

// UnmatchedEndpoint labels requests that hit no route, so probing URLs cannot
// grow the endpoint label set
const UnmatchedEndpoint = "unmatched"

// Metrics records every routed request under its route pattern with basePath
// removed, so "/api/kanban/:id/task_detail/" and "/:id/task_detail/" share a series.
func Metrics(m *metrics.Metrics, basePath string) gin.HandlerFunc {
	basePath = strings.TrimSuffix(basePath, "/")

	return func(c *gin.Context) {
		if metrics.ShouldSkipEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		m.RecordHTTPRequest(c.Request.Method, endpointLabel(c.FullPath(), basePath), c.Writer.Status(), time.Since(start))
	}
}

func endpointLabel(route, basePath string) string {
	if route == "" {
		return UnmatchedEndpoint
	}
	if basePath != "" && strings.HasPrefix(route, basePath) {
		if trimmed := strings.TrimPrefix(route, basePath); trimmed != "" {
			return trimmed
		}
		return "/"
	}
	return route
}
