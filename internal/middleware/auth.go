package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bizops/internal/auth"
	"bizops/pkg/apperr"
	"bizops/pkg/response"
)

// ContextKeyCaller holds the *auth.Caller of an authenticated request.
const ContextKeyCaller = "caller"

// DefaultAuthCookie is the provider's session cookie.
const DefaultAuthCookie = "sb-access-token"

// Auth resolves the request's access token through provider and stores the
// caller on the context. The token is read from `Authorization: Bearer` first,
// then from the session cookie. Every failure is a 401 "Unauthorized".
func Auth(provider auth.Provider, cookieName string) gin.HandlerFunc {
	if cookieName == "" {
		cookieName = DefaultAuthCookie
	}
	return func(c *gin.Context) {
		token := BearerToken(c, cookieName)
		if token == "" {
			response.Fail(c, apperr.Unauthorized())
			return
		}

		caller, err := provider.GetUser(c.Request.Context(), token)
		if err != nil || caller == nil || caller.ID == "" {
			response.Fail(c, apperr.Unauthorized())
			return
		}

		c.Set(ContextKeyCaller, caller)
		c.Next()
	}
}

// BearerToken extracts the access token, or "" when there is none.
func BearerToken(c *gin.Context, cookieName string) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}

// GetCaller returns the authenticated caller. Only valid behind Auth.
func GetCaller(c *gin.Context) (auth.Caller, bool) {
	if v, exists := c.Get(ContextKeyCaller); exists {
		if caller, ok := v.(*auth.Caller); ok && caller != nil {
			return *caller, true
		}
	}
	return auth.Caller{}, false
}
