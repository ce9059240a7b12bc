package entity

import "time"

// DefaultSessionDuration applies when no duration is configured.
const DefaultSessionDuration = 60 * time.Minute

// Session is an authenticated login, keyed by its token.
type Session struct {
	ID           int64     `json:"id"`
	AccountUUID  string    `json:"account_uuid"`
	SessionToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	IPAddress    *string   `json:"ip_address,omitempty"`
	UserAgent    *string   `json:"user_agent,omitempty"`
	LastActivity time.Time `json:"last_activity"`
}

// IsExpired reports whether the session is past its expiry at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
