package repository

import (
	"time"

	"giveone/internal/models"

	"gorm.io/gorm"
)

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Create(d *models.Donation) error {
	return r.db.Create(d).Error
}

func (r *DonationRepository) ListByUser(userID uint, limit int) ([]models.Donation, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var donations []models.Donation
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&donations).Error
	return donations, err
}

// MonthTotal sums the user's donations inside the calendar month containing now.
func (r *DonationRepository) MonthTotal(userID uint, now time.Time) (int64, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)
	var total int64
	err := r.db.Model(&models.Donation{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, monthStart, nextMonth).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&total).Error
	return total, err
}
