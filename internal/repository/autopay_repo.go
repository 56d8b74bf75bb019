package repository

import (
	"giveone/internal/domain"
	"giveone/internal/models"

	"gorm.io/gorm"
)

type AutopayRepository struct {
	db *gorm.DB
}

func NewAutopayRepository(db *gorm.DB) *AutopayRepository {
	return &AutopayRepository{db: db}
}

func (r *AutopayRepository) GetOrCreate(userID uint) (*models.AutopayConfig, error) {
	var ap models.AutopayConfig
	err := r.db.Where("user_id = ?", userID).First(&ap).Error
	if err == nil {
		return &ap, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	ap = models.AutopayConfig{UserID: userID, Enabled: false, AmountCents: domain.DefaultAutopayCents}
	if err := r.db.Create(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AutopayRepository) Save(ap *models.AutopayConfig) error {
	return r.db.Save(ap).Error
}
