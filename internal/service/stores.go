package service

import "giveone/internal/models"

// Narrow store interfaces satisfied by the gorm repositories; services depend
// on these so the date/balance rules can be tested without a database.

type UserStore interface {
	GetByID(id uint) (*models.User, error)
	UpdateStreak(u *models.User) error
}

type WalletStore interface {
	GetOrCreate(userID uint) (*models.Wallet, error)
	Debit(userID uint, amountCents int64) (*models.Wallet, error)
}

type CaseStore interface {
	GetByID(id uint) (*models.Case, error)
	NextOpen(excludeID uint) (*models.Case, error)
	AddRaised(c *models.Case, amountCents int64) error
}

type DonationStore interface {
	Create(d *models.Donation) error
}

type TransactionStore interface {
	Create(t *models.WalletTransaction) error
}

type AutopayStore interface {
	GetOrCreate(userID uint) (*models.AutopayConfig, error)
	Save(ap *models.AutopayConfig) error
}
