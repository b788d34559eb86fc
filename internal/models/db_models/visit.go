package db_models

type Visit struct {
	BaseModel
	IP        string `gorm:"column:ip;type:text" json:"ip"`
	Path      string `gorm:"type:text" json:"path"`
	UserAgent string `gorm:"type:text" json:"user_agent"`
}

func (Visit) TableName() string {
	return "visits"
}
