package models

import "time"

// Friend is a locally kept entry for comparing streaks; it does not link to
// a real account, the streak is whatever the owner typed in.
//
// Rows are hard deleted: (user_id, username) is unique, and a lingering
// soft-deleted row would keep occupying the index and block re-adding the
// same friend.
type Friend struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index:idx_friends_user_username,unique" json:"user_id"`
	Username   string    `gorm:"size:64;not null;index:idx_friends_user_username,unique" json:"username"`
	StreakDays int       `gorm:"not null;default:0" json:"streak_days"`
	CreatedAt  time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Friend) TableName() string { return "friends" }
