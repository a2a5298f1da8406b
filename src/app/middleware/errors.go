package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"pressroom/src/app/http/response"
)

// RequestInfo is the request context handed to the error log hook.
type RequestInfo struct {
	Method   string
	Path     string
	ClientIP string
	TraceID  string
}

// LogHook receives the raw error before it is translated. It must be safe
// to call concurrently from multiple in-flight requests.
type LogHook func(err error, info RequestInfo)

// TraceResolver extracts the correlation id for the error payload.
// Returning empty omits the traceId field.
type TraceResolver func(c *gin.Context) string

// BoundaryOptions customizes the error boundary. Zero fields fall back to
// defaults (no hook, trace id from the request-id middleware).
type BoundaryOptions struct {
	OnError LogHook
	TraceID TraceResolver
}

// ErrorBoundary is the single place a failed request becomes a wire
// response. Handlers attach errors with c.Error and return; after the
// chain runs, the boundary classifies the last error, invokes the log
// hook, and writes the failure envelope with the mapped status. No failure
// reaches the transport layer unwrapped.
func ErrorBoundary(log *slog.Logger) gin.HandlerFunc {
	return ErrorBoundaryWith(BoundaryOptions{
		OnError: func(err error, info RequestInfo) {
			log.Error("request failed",
				"error", err,
				"method", info.Method,
				"path", info.Path,
				"client_ip", info.ClientIP,
				"trace_id", info.TraceID,
			)
		},
	})
}

// ErrorBoundaryWith builds the boundary with explicit options. Exposed for
// tests and for callers that route error logs elsewhere.
func ErrorBoundaryWith(opts BoundaryOptions) gin.HandlerFunc {
	resolve := opts.TraceID
	if resolve == nil {
		resolve = GetTraceID
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		traceID := resolve(c)

		if opts.OnError != nil {
			opts.OnError(err, RequestInfo{
				Method:   c.Request.Method,
				Path:     c.Request.URL.Path,
				ClientIP: c.ClientIP(),
				TraceID:  traceID,
			})
		}

		response.WriteError(c, err, traceID)
	}
}
