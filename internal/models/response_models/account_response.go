package response_models

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse is the public view returned by register.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionUser is the snapshot stored in a session and returned by login and /api/me.
type SessionUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func (u *SessionUser) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
