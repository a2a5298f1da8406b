// Package middleware contains HTTP middleware for the Gin router.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceIDHeader is the HTTP header used for request correlation.
const TraceIDHeader = "X-Request-ID"

// traceIDKey is the context key for storing the trace id.
const traceIDKey = "trace_id"

// TraceID injects a correlation identifier into each request. If the
// inbound request already carries an X-Request-ID header (from a load
// balancer or API gateway), it is reused; otherwise a new UUID is issued.
//
// The trace id is stored in the Gin context and echoed on the response
// headers for client-side correlation.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Set(traceIDKey, traceID)
		c.Header(TraceIDHeader, traceID)

		c.Next()
	}
}

// GetTraceID retrieves the trace id from the Gin context.
// Returns empty string if not set.
func GetTraceID(c *gin.Context) string {
	if id, exists := c.Get(traceIDKey); exists {
		if traceID, ok := id.(string); ok {
			return traceID
		}
	}
	return ""
}
