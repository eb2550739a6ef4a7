package domain

import "time"

// Session describes an issued access token for an authenticated user.
type Session struct {
	UserID    int64
	Role      Role
	Token     string
	ExpiresAt time.Time
	IssuedAt  time.Time
}
