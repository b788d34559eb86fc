package db_models

import "time"

const SubmissionStatusNew = "new"

type Submission struct {
	BaseModel
	Name      string    `gorm:"type:text;not null" json:"name"`
	Phone     string    `gorm:"type:text;not null" json:"phone"`
	Email     *string   `gorm:"type:text" json:"email"`
	Goal      string    `gorm:"type:text;not null" json:"goal"`
	Message   *string   `gorm:"type:text" json:"message"`
	Trainer   *string   `gorm:"type:text" json:"trainer"`
	Plan      *string   `gorm:"type:text" json:"plan"`
	Intent    *string   `gorm:"type:text" json:"intent"`
	Status    string    `gorm:"type:text;not null;default:new" json:"status"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP;index" json:"updated_at"`
}

func (Submission) TableName() string {
	return "submissions"
}
