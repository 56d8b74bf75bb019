package repository

import (
	"giveone/internal/domain"
	"giveone/internal/models"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) GetOrCreate(userID uint) (*models.UserSettings, error) {
	var s models.UserSettings
	err := r.db.Where("user_id = ?", userID).First(&s).Error
	if err == nil {
		return &s, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	s = models.UserSettings{
		UserID:        userID,
		Theme:         domain.DefaultTheme,
		PreferredBank: domain.DefaultPreferredBank,
	}
	if err := r.db.Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Save(s *models.UserSettings) error {
	return r.db.Save(s).Error
}
