package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedEngine(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.PUT("/limited", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return engine
}

func doPut(engine *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/limited", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Middleware(t *testing.T) {
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(2, time.Minute, true)
	rl.now = func() time.Time { return now }
	engine := newLimitedEngine(rl)

	assert.Equal(t, http.StatusNoContent, doPut(engine, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusNoContent, doPut(engine, "10.0.0.1:1234").Code)

	w := doPut(engine, "10.0.0.1:1234")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "REQ-020001")

	// Other clients have their own window
	assert.Equal(t, http.StatusNoContent, doPut(engine, "10.0.0.2:1234").Code)

	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusNoContent, doPut(engine, "10.0.0.1:1234").Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, time.Minute, false)
	engine := newLimitedEngine(rl)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusNoContent, doPut(engine, "10.0.0.1:1234").Code)
	}
	assert.Equal(t, 0, rl.Len())
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(0, 0, true)
	rl.now = func() time.Time { return now }

	allowed, _ := rl.allow("a")
	assert.True(t, allowed)
	now = now.Add(30 * time.Second)
	allowed, _ = rl.allow("b")
	assert.True(t, allowed)
	require.Equal(t, 2, rl.Len())

	now = now.Add(45 * time.Second)
	rl.Cleanup()
	assert.Equal(t, 1, rl.Len())

	rl.Reset()
	assert.Equal(t, 0, rl.Len())
}

func TestRateLimiter_SweepsExpiredClientsWhileServing(t *testing.T) {
	start := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	now := start
	rl := NewRateLimiterWithConfig(5, time.Minute, true)
	rl.now = func() time.Time { return now }

	rl.allow("a")
	now = start.Add(30 * time.Second)
	rl.allow("b")
	require.Equal(t, 2, rl.Len())

	// "a" expired at 60s; the sweep runs because a full window passed since the last one.
	now = start.Add(75 * time.Second)
	rl.allow("c")
	assert.Equal(t, 2, rl.Len())

	// Less than a window since the last sweep: "b" is expired but still tracked.
	now = start.Add(100 * time.Second)
	rl.allow("c")
	assert.Equal(t, 2, rl.Len())

	now = start.Add(200 * time.Second)
	rl.allow("d")
	assert.Equal(t, 1, rl.Len())
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) {
		id, ok := GetRequestID(c)
		require.True(t, ok)
		c.String(http.StatusOK, id)
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "7f1c2b9e-4a8d-4c3e-9b1a-2d6f0e5c8a41")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "7f1c2b9e-4a8d-4c3e-9b1a-2d6f0e5c8a41", w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces a malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "not-an-id")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.NotEqual(t, "not-an-id", w.Header().Get(RequestIDHeader))
	})
}
