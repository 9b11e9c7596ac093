package domain

import "time"

// User is the authenticated user's profile record as persisted locally and
// returned by the auth endpoints.
type User struct {
	MongoID   string     `json:"_id,omitempty"`
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Bio       string     `json:"bio,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Key returns the user's canonical identifier, preferring the backend's
// `_id` when both forms are present.
func (u User) Key() string {
	if u.MongoID != "" {
		return u.MongoID
	}
	return u.ID
}

// Session is a point-in-time snapshot of authentication state. Token and
// User are either both set or both empty; IsAuthenticated is derived from
// the token's presence.
type Session struct {
	User            *User
	Token           string
	IsAuthenticated bool
}

// CanEnter reports whether a protected view may be shown under the given
// session snapshot. It is a pure predicate; callers re-evaluate it on every
// navigation attempt and on every session transition.
func CanEnter(session Session) bool {
	return session.IsAuthenticated
}
