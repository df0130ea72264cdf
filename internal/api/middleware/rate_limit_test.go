package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestIPLimiterPoolBurstExhaustion(t *testing.T) {
	pool := newIPLimiterPool(rate.Limit(1), 2)

	assert.True(t, pool.allow("10.0.0.1"))
	assert.True(t, pool.allow("10.0.0.1"))
	assert.False(t, pool.allow("10.0.0.1"))

	// Buckets are per IP, so a second client is unaffected.
	assert.True(t, pool.allow("10.0.0.2"))
}

func TestRateLimitResponseShape(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(1, 1))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.3:5000"
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do().Code)

	w := do()
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var body models.ApiResponse[any]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusTooManyRequests, body.Status)
	assert.Equal(t, "too many requests", body.Message)
}
