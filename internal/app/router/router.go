// Package router wires the HTTP routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog_backend/internal/api"
	authhandler "microblog_backend/internal/feature/auth/transport/handler"
	"microblog_backend/internal/feature/auth/transport/middleware"
	posthandler "microblog_backend/internal/feature/posts/transport/handler"
	"microblog_backend/internal/shared/ratelimiter"
)

// NewRouter builds the route table. The identity middleware runs on every
// request and only annotates it; whether anonymous access is allowed is
// decided per action by the authorization policy, not per route.
func NewRouter(authH *authhandler.AuthHandler, postH *posthandler.PostHandler,
	resolver middleware.IdentityResolver, authLimiter *ratelimiter.Limiter) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Identity(resolver))

	r.GET("/healthz", health)

	// Credential endpoints are throttled per client IP.
	r.POST("/register", throttle(authLimiter), authH.Register)
	r.POST("/login", throttle(authLimiter), authH.Login)
	r.POST("/logout", authH.Logout)

	posts := r.Group("/posts")
	{
		posts.GET("", postH.List)
		posts.GET("/search", postH.Search)
		posts.GET("/:id", postH.Get)
		posts.POST("", postH.Create)
		posts.PUT("/:id", postH.Update)
		posts.DELETE("/:id", postH.Delete)
	}

	return r
}

// health is the liveness probe endpoint.
func health(c *gin.Context) {
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// throttle rejects requests over the per-IP limit with 429.
func throttle(l *ratelimiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "too many requests"})
			return
		}
		c.Next()
	}
}
