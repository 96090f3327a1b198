package auth

import "time"

// Session is the admin identity carried by an authenticated request.
type Session struct {
	UserID    int64
	Username  string
	TokenID   string
	ExpiresAt time.Time
}

// NewSession builds a session from validated token claims.
func NewSession(claims *Claims) *Session {
	if claims == nil {
		return nil
	}
	s := &Session{
		UserID:   claims.UserID,
		Username: claims.Username,
		TokenID:  claims.ID,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s
}

// IsAuthorized reports whether s may perform admin operations.
func IsAuthorized(s *Session) bool {
	if s == nil || s.UserID <= 0 {
		return false
	}
	return s.ExpiresAt.IsZero() || time.Now().Before(s.ExpiresAt)
}
