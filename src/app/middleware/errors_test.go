package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom/src/core/domain"
	"pressroom/src/infra/logger"
)

func boundaryRouter(register func(r *gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(logger.Discard()))
	r.Use(TraceID())
	r.Use(ErrorBoundary(logger.Discard()))
	register(r)
	return r
}

func decodeFailure(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.Equal(t, false, decoded["ok"])
	return decoded["error"].(map[string]any)
}

func TestBoundaryTranslatesDomainError(t *testing.T) {
	r := boundaryRouter(func(r *gin.Engine) {
		r.GET("/fail", func(c *gin.Context) {
			c.Error(domain.NewNotFound("X not found", map[string]any{"id": "abc"}))
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set(TraceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	payload := decodeFailure(t, rec.Body.Bytes())
	assert.Equal(t, "RESOURCE.NOT_FOUND", payload["code"])
	assert.Equal(t, "X not found", payload["message"])
	assert.Equal(t, map[string]any{"id": "abc"}, payload["details"])
	assert.Equal(t, "trace-42", payload["traceId"])
}

func TestBoundaryDowngradesUnknownFault(t *testing.T) {
	r := boundaryRouter(func(r *gin.Engine) {
		r.GET("/fail", func(c *gin.Context) {
			c.Error(errors.New("boom"))
		})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	payload := decodeFailure(t, rec.Body.Bytes())
	assert.Equal(t, "SYS.UNKNOWN", payload["code"])
	assert.Equal(t, "Internal server error", payload["message"])
	assert.NotEqual(t, "boom", payload["message"])

	details := payload["details"].(map[string]any)
	assert.Equal(t, "boom", details["message"])
}

func TestBoundaryLeavesSuccessAlone(t *testing.T) {
	r := boundaryRouter(func(r *gin.Engine) {
		r.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true, "data": "fine"})
		})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, "fine", decoded["data"])
}

func TestBoundaryInvokesLogHook(t *testing.T) {
	var mu sync.Mutex
	var got []RequestInfo

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceID())
	r.Use(ErrorBoundaryWith(BoundaryOptions{
		OnError: func(err error, info RequestInfo) {
			mu.Lock()
			got = append(got, info)
			mu.Unlock()
		},
	}))
	r.GET("/fail", func(c *gin.Context) {
		c.Error(domain.NewUnauthorized(""))
	})

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set(TraceIDHeader, "trace-7")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Len(t, got, 1)
	assert.Equal(t, http.MethodGet, got[0].Method)
	assert.Equal(t, "/fail", got[0].Path)
	assert.Equal(t, "trace-7", got[0].TraceID)
}

func TestRecoveryProducesEnvelope(t *testing.T) {
	r := boundaryRouter(func(r *gin.Engine) {
		r.GET("/panic", func(c *gin.Context) {
			panic("kaboom")
		})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	payload := decodeFailure(t, rec.Body.Bytes())
	assert.Equal(t, "SYS.UNKNOWN", payload["code"])
	assert.Equal(t, "Internal server error", payload["message"])
}

func TestTraceIDGeneratedWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceID())
	r.GET("/", func(c *gin.Context) {
		assert.NotEmpty(t, GetTraceID(c))
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get(TraceIDHeader))
}

func TestTraceIDReusesInbound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceID())
	r.GET("/", func(c *gin.Context) {
		assert.Equal(t, "upstream-id", GetTraceID(c))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "upstream-id")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-id", rec.Header().Get(TraceIDHeader))
}
