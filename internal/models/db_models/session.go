package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side half of a login. Email and role are a snapshot
// taken when the session was created.
type Session struct {
	Token     string    `gorm:"type:text;primaryKey" json:"token"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Email     string    `gorm:"type:text;not null" json:"email"`
	Role      string    `gorm:"type:text;not null" json:"role"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null" json:"created_at"`
	ExpiresAt time.Time `gorm:"type:timestamptz;not null;index" json:"expires_at"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
