package models

import (
	"testing"

	"giveone/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestApplyDonation(t *testing.T) {
	c := &Case{GoalCents: 500, RaisedCents: 200, Status: domain.CaseStatusOpen}

	c.ApplyDonation(100)
	assert.Equal(t, int64(300), c.RaisedCents)
	assert.Equal(t, domain.CaseStatusOpen, c.Status)

	c.ApplyDonation(200)
	assert.Equal(t, int64(500), c.RaisedCents)
	assert.Equal(t, domain.CaseStatusFunded, c.Status)

	// Funded never reverts, the total keeps growing.
	c.ApplyDonation(50)
	assert.Equal(t, int64(550), c.RaisedCents)
	assert.Equal(t, domain.CaseStatusFunded, c.Status)
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name   string
		goal   int64
		raised int64
		want   int
	}{
		{"empty", 500, 0, 0},
		{"partial", 500, 200, 40},
		{"at goal", 500, 500, 100},
		{"overshot clamps", 500, 700, 100},
		{"zero goal", 0, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Case{GoalCents: tt.goal, RaisedCents: tt.raised}
			assert.Equal(t, tt.want, c.ProgressPercent())
		})
	}
}
