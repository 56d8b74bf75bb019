package models

import (
	"time"

	"gorm.io/gorm"
)

// UserSettings stores per-user preferences (theme, demo payment source).
type UserSettings struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Theme         string         `gorm:"size:20;not null;default:'light'" json:"theme"`
	PreferredBank string         `gorm:"size:128;not null;default:'Wallet only (demo)'" json:"preferred_bank"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (UserSettings) TableName() string { return "user_settings" }
