package repository

import (
	"errors"

	"giveone/internal/models"

	"gorm.io/gorm"
)

var ErrFriendExists = errors.New("friend already added")

type FriendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

func (r *FriendRepository) ListByUser(userID uint) ([]models.Friend, error) {
	var friends []models.Friend
	err := r.db.Where("user_id = ?", userID).Order("streak_days DESC, username ASC").Find(&friends).Error
	return friends, err
}

func (r *FriendRepository) Create(f *models.Friend) error {
	var existing models.Friend
	err := r.db.Where("user_id = ? AND username = ?", f.UserID, f.Username).First(&existing).Error
	if err == nil {
		return ErrFriendExists
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.Create(f).Error
}

func (r *FriendRepository) Delete(userID, id uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Friend{}, id).Error
}
