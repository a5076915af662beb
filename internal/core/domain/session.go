package domain

import "time"

// Session is the single authentication state observed by every view for one
// client. A nil Identity means the session is anonymous. Sessions live only
// in process memory; a restart clears them all.
type Session struct {
	ID        string    `json:"id"`
	Identity  *User     `json:"identity,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Authenticated reports whether the session carries an identity. Safe on nil.
func (s *Session) Authenticated() bool {
	return s != nil && s.Identity != nil
}

// Role returns the session's role, or the empty Role when anonymous.
func (s *Session) Role() Role {
	if !s.Authenticated() {
		return ""
	}
	return s.Identity.Role
}
