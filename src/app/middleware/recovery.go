package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"pressroom/src/app/http/response"
)

// Recovery recovers from panics and funnels them through the same envelope
// translation as handler errors, so even a programming fault produces a
// well-formed failure response. The stack trace goes to the log only,
// never to the client.
//
// This should be one of the first middleware in the chain to catch all panics.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				traceID := GetTraceID(c)

				log.Error("panic recovered",
					"trace_id", traceID,
					"error", r,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"stack", string(debug.Stack()),
				)

				// An unclassified error downgrades to a system fault
				// with a generic message.
				response.WriteError(c, fmt.Errorf("%v", r), traceID)
			}
		}()

		c.Next()
	}
}
