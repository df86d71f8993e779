package auth

import "time"

// Staff is a daycare employee account. Staff ids end up on every activity,
// attendance and message row they author.
type Staff struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"type:text;not null;default:''"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null;default:now()"`
}

func (Staff) TableName() string { return "staff" }
