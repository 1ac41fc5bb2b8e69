package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"promokit/services"
)

const (
	DefaultRateLimit  = 10
	DefaultRateWindow = 60 * time.Second
)

// RateLimit gates public endpoints with a fixed-window counter keyed by
// client IP. Rejected callers get 429 before any work happens.
func RateLimit(store services.CounterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.Allow(c.Request.Context(), c.ClientIP(), DefaultRateLimit, DefaultRateWindow) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again in a minute."})
			return
		}
		c.Next()
	}
}
