package repository

import (
	"giveone/internal/domain"
	"giveone/internal/models"

	"gorm.io/gorm"
)

type CaseRepository struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

func (r *CaseRepository) List() ([]models.Case, error) {
	var cases []models.Case
	err := r.db.Order("id ASC").Find(&cases).Error
	return cases, err
}

func (r *CaseRepository) GetByID(id uint) (*models.Case, error) {
	var c models.Case
	err := r.db.First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// NextOpen returns the first open case, skipping excludeID; nil when every
// case is funded.
func (r *CaseRepository) NextOpen(excludeID uint) (*models.Case, error) {
	var c models.Case
	q := r.db.Where("status = ?", domain.CaseStatusOpen)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Order("id ASC").First(&c).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// AddRaised applies a donation to the case and persists the new total and
// status.
func (r *CaseRepository) AddRaised(c *models.Case, amountCents int64) error {
	c.ApplyDonation(amountCents)
	return r.db.Model(c).Updates(map[string]interface{}{
		"raised_cents": c.RaisedCents,
		"status":       c.Status,
	}).Error
}

func (r *CaseRepository) UpdateImageURL(id uint, url string) error {
	return r.db.Model(&models.Case{}).Where("id = ?", id).Update("image_url", url).Error
}
