package activity

import "time"

// Actions recorded by the gateway.
const (
	ActionLogin    = "LOGIN"
	ActionRegister = "REGISTER"
	ActionUpload   = "UPLOAD"
	ActionDownload = "DOWNLOAD"
)

// UserActivity is one audit event.
type UserActivity struct {
	ID         uint      `gorm:"primaryKey"`
	Username   string    `gorm:"index;size:191"`
	Action     string    `gorm:"size:16"`
	Details    string    // extra info like file key, search query, counts
	IPAddress  string    `gorm:"size:64"`
	OccurredAt time.Time `gorm:"index"`
}

// TableName keeps the table name stable regardless of gorm pluralization.
func (UserActivity) TableName() string {
	return "user_activity"
}
