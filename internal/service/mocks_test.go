package service

import (
	"giveone/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) UpdateStreak(u *models.User) error {
	args := m.Called(u)
	return args.Error(0)
}

type mockWalletStore struct {
	mock.Mock
}

func (m *mockWalletStore) GetOrCreate(userID uint) (*models.Wallet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *mockWalletStore) Debit(userID uint, amountCents int64) (*models.Wallet, error) {
	args := m.Called(userID, amountCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

type mockCaseStore struct {
	mock.Mock
}

func (m *mockCaseStore) GetByID(id uint) (*models.Case, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Case), args.Error(1)
}

func (m *mockCaseStore) NextOpen(excludeID uint) (*models.Case, error) {
	args := m.Called(excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Case), args.Error(1)
}

func (m *mockCaseStore) AddRaised(c *models.Case, amountCents int64) error {
	args := m.Called(c, amountCents)
	if args.Error(0) == nil {
		c.ApplyDonation(amountCents)
	}
	return args.Error(0)
}

type mockDonationStore struct {
	mock.Mock
}

func (m *mockDonationStore) Create(d *models.Donation) error {
	args := m.Called(d)
	return args.Error(0)
}

type mockTransactionStore struct {
	mock.Mock
}

func (m *mockTransactionStore) Create(t *models.WalletTransaction) error {
	args := m.Called(t)
	return args.Error(0)
}

type mockAutopayStore struct {
	mock.Mock
}

func (m *mockAutopayStore) GetOrCreate(userID uint) (*models.AutopayConfig, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AutopayConfig), args.Error(1)
}

func (m *mockAutopayStore) Save(ap *models.AutopayConfig) error {
	args := m.Called(ap)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) CaseUpdated(c *models.Case) {
	m.Called(c)
}
