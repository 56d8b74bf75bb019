package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FirstName    string     `gorm:"size:64;not null" json:"first_name"`
	LastName     string     `gorm:"size:64;not null" json:"last_name"`
	Username     string     `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	InviteCode   string     `gorm:"size:20" json:"invite_code"`
	StreakDays   int        `gorm:"not null;default:0" json:"streak_days"`
	StreakLastTS *time.Time `json:"streak_last_ts"`
	// StreakFreezeTokens is reserved for a future "freeze" mechanic; every
	// account starts with one token but nothing consumes them yet.
	StreakFreezeTokens int            `gorm:"not null;default:1" json:"streak_freeze_tokens"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}
