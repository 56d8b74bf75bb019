package models

import (
	"time"

	"gorm.io/gorm"
)

// AutopayConfig is a recurring-donation rule evaluated lazily on each
// dashboard refresh; there is no scheduler behind it.
type AutopayConfig struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Enabled     bool           `gorm:"not null;default:false" json:"enabled"`
	AmountCents int64          `gorm:"not null;default:100" json:"amount_cents"`
	CaseID      *uint          `json:"case_id"`
	LastRunAt   *time.Time     `json:"last_run_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (AutopayConfig) TableName() string { return "autopay_configs" }
