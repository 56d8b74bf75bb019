package models

import (
	"time"

	"gorm.io/gorm"

	"giveone/internal/domain"
)

// Case is a fundraising campaign with a goal and a running total.
// RaisedCents only ever grows; Status flips to Funded once the goal is
// reached and never reverts.
type Case struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	OrgName     string         `gorm:"size:255;not null" json:"org_name"`
	GoalCents   int64          `gorm:"not null" json:"goal_cents"`
	RaisedCents int64          `gorm:"not null;default:0" json:"raised_cents"`
	Status      string         `gorm:"size:20;not null;index;default:'Open'" json:"status"` // Open | Funded
	Category    string         `gorm:"size:64;index" json:"category"`
	City        string         `gorm:"size:128" json:"city"`
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `gorm:"size:512" json:"image_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Case) TableName() string { return "cases" }

func (c *Case) IsOpen() bool { return c.Status == domain.CaseStatusOpen }

// ApplyDonation adds to the running total and flips the case to Funded once
// the goal is reached. The flip is one-way; a funded case stays funded.
func (c *Case) ApplyDonation(amountCents int64) {
	c.RaisedCents += amountCents
	if c.RaisedCents >= c.GoalCents {
		c.Status = domain.CaseStatusFunded
	}
}

// ProgressPercent is clamped to 100 for funded cases that overshot the goal.
func (c *Case) ProgressPercent() int {
	if c.GoalCents <= 0 {
		return 0
	}
	p := int(c.RaisedCents * 100 / c.GoalCents)
	if p > 100 {
		p = 100
	}
	return p
}
