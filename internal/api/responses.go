package api

import "time"

// ErrorResponse is the uniform error body returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries the session token issued on successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// PostResponse is the JSON representation of a single post.
type PostResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uint      `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserResponse is the JSON representation of a registered user.
// The password hash is never serialized.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
