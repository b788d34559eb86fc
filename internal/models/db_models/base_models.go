package db_models

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel carries the columns every table shares. Rows are written with
// explicit SQL, so ids are generated by NewID rather than by a gorm hook.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func NewID() uuid.UUID {
	return uuid.New()
}
