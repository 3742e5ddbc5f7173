package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousDisplay is shown in place of a voter handle that cannot be resolved.
const AnonymousDisplay = "Anonymous"

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// DisplayName returns the user's handle, or AnonymousDisplay when it is empty.
func (u *User) DisplayName() string {
	if u == nil || u.Username == "" {
		return AnonymousDisplay
	}
	return u.Username
}
