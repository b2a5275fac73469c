// Package api defines the request and response payloads shared by the HTTP
// handlers. Credential payloads carry binding tags; post payloads are
// validated by the usecase after authorization.
package api

// RegisterRequest is the request body for POST /register.
// The username bounds mirror the registration form rules; the password
// minimum matches the usecase requirement so obviously bad requests are
// rejected before reaching it.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PostRequest is the request body for creating or editing a post. It carries
// no binding rules: field validation lives in the usecase so it runs after
// the authentication and ownership checks, and a non-owner never learns from
// a 400 that their body was malformed.
type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
