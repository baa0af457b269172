package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// Context keys populated by BearerTokenMiddleware.
const (
	ContextAuthToken = "authToken"
	ContextUserID    = "userID"
)

// BearerTokenMiddleware extracts the bearer token from the Authorization
// header and stashes it for the handlers, which forward it to the
// upstream API. Token validity is verified upstream; claims are only
// decoded here to recover a fallback user id when the request body
// omits one.
func BearerTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			raw := strings.TrimPrefix(header, "Bearer ")
			c.Set(ContextAuthToken, raw)
			if uid := userIDFromClaims(raw); uid != "" {
				c.Set(ContextUserID, uid)
			}
		}
		c.Next()
	}
}

// userIDFromClaims decodes the token without verifying its signature
// and looks for a user id claim.
func userIDFromClaims(raw string) string {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(raw, claims); err != nil {
		return ""
	}
	for _, key := range []string{"id", "userId", "sub"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
