package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLimiterPerKey(t *testing.T) {
	l := New(0.001, 2)

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))

	// Separate bucket for another client.
	assert.True(t, l.Allow("b"))
}

func TestIdleBucketsExpire(t *testing.T) {
	l := NewWithIdleTTL(0.001, 1, 50*time.Millisecond)

	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.Equal(t, 1, l.limiters.ItemCount())

	time.Sleep(120 * time.Millisecond)
	l.limiters.DeleteExpired()
	assert.Zero(t, l.limiters.ItemCount(), "idle buckets are dropped")

	assert.True(t, l.Allow("a"), "a returning client starts with a full bucket")
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(l *Limiter, n int) []int {
		r := gin.New()
		r.Use(Middleware(l))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		codes := make([]int, 0, n)
		for i := 0; i < n; i++ {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}
		return codes
	}

	assert.Equal(t, []int{200, 200, 429}, run(New(0.001, 2), 3))
	assert.Equal(t, []int{200, 200, 200}, run(New(0, 1), 3), "rps <= 0 disables limiting")
	assert.Equal(t, []int{200, 200}, run(nil, 2))
}
