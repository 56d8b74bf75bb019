package repository

import (
	"errors"
	"time"

	"giveone/internal/models"

	"gorm.io/gorm"
)

var ErrInsufficientBalance = errors.New("insufficient wallet balance")

type WalletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) GetByUserID(userID uint) (*models.Wallet, error) {
	var w models.Wallet
	err := r.db.Where("user_id = ?", userID).First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WalletRepository) GetOrCreate(userID uint) (*models.Wallet, error) {
	w, err := r.GetByUserID(userID)
	if err == nil {
		return w, nil
	}
	w = &models.Wallet{UserID: userID, BalanceCents: 0, LastUpdated: time.Now()}
	if err := r.db.Create(w).Error; err != nil {
		return nil, err
	}
	return w, nil
}

// Credit adds to the balance and returns the updated wallet.
func (r *WalletRepository) Credit(userID uint, amountCents int64) (*models.Wallet, error) {
	w, err := r.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	w.BalanceCents += amountCents
	w.LastUpdated = time.Now()
	if err := r.db.Model(w).Updates(map[string]interface{}{
		"balance_cents": w.BalanceCents,
		"last_updated":  w.LastUpdated,
	}).Error; err != nil {
		return nil, err
	}
	return w, nil
}

// Debit subtracts from the balance; ErrInsufficientBalance when the wallet
// cannot cover the amount. Returns the updated wallet so callers can record
// the running balance.
func (r *WalletRepository) Debit(userID uint, amountCents int64) (*models.Wallet, error) {
	w, err := r.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if w.BalanceCents < amountCents {
		return nil, ErrInsufficientBalance
	}
	w.BalanceCents -= amountCents
	w.LastUpdated = time.Now()
	if err := r.db.Model(w).Updates(map[string]interface{}{
		"balance_cents": w.BalanceCents,
		"last_updated":  w.LastUpdated,
	}).Error; err != nil {
		return nil, err
	}
	return w, nil
}
