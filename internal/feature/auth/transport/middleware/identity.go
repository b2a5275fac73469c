// Package middleware resolves the optional session token on each request.
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"microblog_backend/internal/feature/auth/domain/entity"
)

// Context keys for the resolved identity and the raw token.
const (
	ContextIdentity = "identity"
	ContextToken    = "sessionToken"
)

// IdentityResolver maps a session token to an identity, or nil for anonymous.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (usecase).
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) *entity.Identity
}

// Identity returns a Gin middleware that resolves the bearer token to an
// identity and stores it in the request context. It never aborts: an absent
// or invalid token leaves the request anonymous, and whether that is allowed
// is decided per action by the authorization policy.
func Identity(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token := strings.TrimPrefix(auth, "Bearer ")
			c.Set(ContextToken, token)
			if id := resolver.Resolve(c.Request.Context(), token); id != nil {
				c.Set(ContextIdentity, id)
			}
		}
		c.Next()
	}
}

// IdentityFrom returns the resolved identity for the request, or nil.
func IdentityFrom(c *gin.Context) *entity.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil
	}
	id, ok := v.(*entity.Identity)
	if !ok {
		return nil
	}
	return id
}

// TokenFrom returns the raw bearer token for the request, or "".
func TokenFrom(c *gin.Context) string {
	v, ok := c.Get(ContextToken)
	if !ok {
		return ""
	}
	token, _ := v.(string)
	return token
}
