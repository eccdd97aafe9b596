package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ariebrainware/patient-referral/referral"
	"github.com/ariebrainware/patient-referral/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	r := newTestRouter()
	r.Use(CORSMiddleware())
	r.POST("/api/patient/diagnose", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/patient/diagnose", nil)
	req.Header.Set("Origin", "http://localhost:5500")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestCORSMiddleware_SimpleRequest(t *testing.T) {
	r := newTestRouter()
	r.Use(CORSMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://example.com")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServiceMiddlewareAndGetService(t *testing.T) {
	svc := referral.NewService(store.NewMemoryStore())
	r := newTestRouter()
	r.Use(ServiceMiddleware(svc))

	var got *referral.Service
	r.GET("/svc", func(c *gin.Context) {
		got = GetService(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/svc", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Same(t, svc, got)
}

func TestGetService_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetService(c))
}

func TestRequestID(t *testing.T) {
	r := newTestRouter()
	r.Use(RequestID())
	var seen string
	r.GET("/rid", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	t.Run("generates when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rid", nil))

		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("reuses valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/rid", nil)
		req.Header.Set(RequestIDHeader, incoming)
		r.ServeHTTP(w, req)

		assert.Equal(t, incoming, seen)
		assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/rid", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid\nInjected: 1")
		r.ServeHTTP(w, req)

		assert.NotEqual(t, "not-a-uuid\nInjected: 1", seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})
}
