package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLimiterStore_BlocksPastBurst(t *testing.T) {
	s := NewLimiterStore(1, 3, time.Hour)
	defer s.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, s.Allow("a"), "request %d", i)
	}
	assert.False(t, s.Allow("a"))

	// keys are independent
	assert.True(t, s.Allow("b"))
}

func TestLimiterStore_Sweep(t *testing.T) {
	s := NewLimiterStore(60, 1, time.Hour)
	defer s.Stop()

	s.Allow("a")
	s.Allow("b")
	assert.Equal(t, 2, s.size())

	s.sweep(time.Now().Add(time.Minute))
	assert.Equal(t, 0, s.size())
}

func TestLimiterStore_StopTwice(t *testing.T) {
	s := NewLimiterStore(60, 1, time.Hour)
	s.Stop()
	assert.NotPanics(t, s.Stop)
}

func TestRateLimit(t *testing.T) {
	s := NewLimiterStore(1, 2, time.Hour)
	defer s.Stop()

	r := gin.New()
	r.POST("/api/send-email", RateLimit(s), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/send-email", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)

	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Too many requests. Please try again later."}`, w.Body.String())
}
