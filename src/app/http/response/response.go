// Package response defines the uniform wire envelope every endpoint speaks.
//
// Success bodies are {"ok":true,"data":...,"meta":{...}} and failures are
// {"ok":false,"error":{"code","message","details","traceId"}}. The two
// shapes are separate types, so a success can never carry an error key and
// a failure can never carry data.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pressroom/src/core/domain"
)

// CodeRouteNotFound is returned for requests that match no route. It is
// route-level, not part of the domain taxonomy.
const CodeRouteNotFound = "ROUTE.NOT_FOUND"

// Success is the envelope around any successful response body.
type Success struct {
	OK   bool           `json:"ok"`
	Data any            `json:"data"`
	Meta map[string]any `json:"meta,omitempty"`
}

// Failure is the envelope around any failed response body.
type Failure struct {
	OK    bool         `json:"ok"`
	Error ErrorPayload `json:"error"`
}

// ErrorPayload carries the classified failure over the wire. Code is the
// only field safe for programmatic branching; Message may change.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	TraceID string `json:"traceId,omitempty"`
}

// Ok constructs a success envelope. Pure; never inspects data.
func Ok(data any, meta map[string]any) Success {
	return Success{OK: true, Data: data, Meta: meta}
}

// Fail constructs a failure envelope. Pure.
func Fail(code, message string, details any, traceID string) Failure {
	return Failure{OK: false, Error: ErrorPayload{
		Code:    code,
		Message: message,
		Details: details,
		TraceID: traceID,
	}}
}

// OK sends a 200 response with data and optional meta.
func OK(c *gin.Context, data any, meta map[string]any) {
	c.JSON(http.StatusOK, Ok(data, meta))
}

// Created sends a 201 response with the created resource.
func Created(c *gin.Context, data any, meta map[string]any) {
	c.JSON(http.StatusCreated, Ok(data, meta))
}

// NoContent sends a 204 response with no body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// WriteError translates any error into a failure envelope plus transport
// status. Classified domain errors keep their code, message, and details;
// anything else is downgraded to a system fault with a generic message and
// the original message tucked under details for operators. This is the only
// place errors become wire payloads.
func WriteError(c *gin.Context, err error, traceID string) {
	if de, ok := domain.AsError(err); ok {
		c.AbortWithStatusJSON(de.Status, Fail(de.Code, de.Message, detailsOrNil(de.Details), traceID))
		return
	}

	message := "Unknown error"
	if err != nil {
		message = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, Fail(
		domain.CodeSystemFault,
		"Internal server error",
		map[string]any{"message": message},
		traceID,
	))
}

// RouteNotFound sends the failure envelope for an unmatched route.
func RouteNotFound(c *gin.Context, path string) {
	c.JSON(http.StatusNotFound, Fail(
		CodeRouteNotFound,
		"Route not found",
		map[string]any{"path": path},
		"",
	))
}

func detailsOrNil(details map[string]any) any {
	if len(details) == 0 {
		return nil
	}
	return details
}
