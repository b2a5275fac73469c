package entity

// Identity is the resolved acting user for a request. A nil *Identity means
// the request is anonymous; a non-nil Identity always refers to a user that
// existed when the session token was resolved.
type Identity struct {
	UserID   uint
	Username string
}
