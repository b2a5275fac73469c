package entity

import "time"

// Session represents a server-side login session. A session is created on
// login and is the revocable half of the token handed to the client: the
// signed token proves possession, the session record decides validity.
type Session struct {
	ID        string     // Opaque session identifier (UUID)
	UserID    uint       // Associated user ID
	CreatedAt time.Time  // Session creation time
	ExpiresAt time.Time  // Session expiration time
	RevokedAt *time.Time // Revocation time (nil if active)
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsRevoked returns true if the session has been revoked.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsValid returns true if the session is neither expired nor revoked.
func (s *Session) IsValid() bool {
	return !s.IsExpired() && !s.IsRevoked()
}
