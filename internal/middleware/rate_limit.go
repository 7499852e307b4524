package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bizops/pkg/apperr"
	"bizops/pkg/response"
)

// ==================== Rate limit middleware ====================

// KeyFunc derives the limiter key for a request.
type KeyFunc func(c *gin.Context) string

// ByClientIP keys on the route and the client address.
func ByClientIP(c *gin.Context) string {
	return c.FullPath() + ":" + c.ClientIP()
}

// RateLimit refuses a request with 429 when its key ran less than interval ago.
//
// Example:
//
//	r.POST("/api/auth/forgot-password",
//	    middleware.RateLimit(limiter, middleware.ByClientIP, 5*time.Second),
//	    authCtl.ForgotPassword,
//	)
func RateLimit(limiter *KeyedLimiter, key KeyFunc, interval time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := limiter.Check(key(c), interval)
		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(retrySeconds(res.RetryAfter)))
			response.Fail(c, apperr.TooManyRequests(formatRetryMessage(res.RetryAfter)))
			return
		}
		c.Next()
	}
}

func retrySeconds(d time.Duration) int {
	s := int(d.Seconds())
	if d > time.Duration(s)*time.Second {
		s++
	}
	if s < 1 {
		s = 1
	}
	return s
}

func formatRetryMessage(d time.Duration) string {
	return fmt.Sprintf("Too many requests, retry in %d seconds", retrySeconds(d))
}
