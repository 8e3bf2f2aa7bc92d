package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupLimitedRouter(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	limiter := NewClientRateLimiter(rps, burst)
	r.POST("/ping", limiter.Handler(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func hit(r *gin.Engine, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/ping", nil)
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestClientIdentity_ForwardedForTakesFirstEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	assert.Equal(t, "203.0.113.7", ClientIdentity(c))
}

func TestClientIdentity_FallsBackToPeerAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.9:41234"

	assert.Equal(t, "192.0.2.9", ClientIdentity(c))
}

func TestClientRateLimiter_ExhaustedBucketGets429(t *testing.T) {
	r := setupLimitedRouter(0, 2)

	assert.Equal(t, http.StatusOK, hit(r, "203.0.113.7"))
	assert.Equal(t, http.StatusOK, hit(r, "203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "203.0.113.7"))
}

func TestClientRateLimiter_BucketsAreScopedPerClient(t *testing.T) {
	r := setupLimitedRouter(0, 1)

	assert.Equal(t, http.StatusOK, hit(r, "203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "203.0.113.7"))

	// A different origin still has a full bucket.
	assert.Equal(t, http.StatusOK, hit(r, "198.51.100.4"))
}
