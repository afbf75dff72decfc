package auth

import "time"

// User is a registered account. PasswordHash stores a bcrypt digest; the
// plaintext password never touches the database.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:191"`
	PasswordHash string `gorm:"size:191"`
	CreatedAt    time.Time
}

// TableName keeps the table name stable regardless of gorm pluralization.
func (User) TableName() string {
	return "users"
}
