package models

import (
	"time"

	"gorm.io/gorm"
)

// Donation is an immutable history entry; RunningBalanceCents captures the
// wallet balance right after the debit.
type Donation struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	UserID              uint           `gorm:"not null;index" json:"user_id"`
	CaseID              uint           `gorm:"not null;index" json:"case_id"`
	AmountCents         int64          `gorm:"not null" json:"amount_cents"`
	RunningBalanceCents int64          `gorm:"not null" json:"running_balance_cents"`
	CreatedAt           time.Time      `gorm:"index" json:"timestamp"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Case Case `gorm:"foreignKey:CaseID" json:"-"`
}

func (Donation) TableName() string { return "donations" }
