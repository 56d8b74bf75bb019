package service

import (
	"testing"
	"time"

	"giveone/internal/domain"
	"giveone/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type autopayFixture struct {
	svc       *AutopayService
	autopay   *mockAutopayStore
	users     *mockUserStore
	wallets   *mockWalletStore
	cases     *mockCaseStore
	donations *mockDonationStore
	txns      *mockTransactionStore
}

func newAutopayFixture() *autopayFixture {
	f := &autopayFixture{
		autopay:   new(mockAutopayStore),
		users:     new(mockUserStore),
		wallets:   new(mockWalletStore),
		cases:     new(mockCaseStore),
		donations: new(mockDonationStore),
		txns:      new(mockTransactionStore),
	}
	donationSvc := NewDonationService(f.users, f.wallets, f.cases, f.donations, f.txns, nil)
	f.svc = NewAutopayService(f.autopay, f.cases, f.wallets, donationSvc, 24*time.Hour)
	return f
}

// expectDonation wires the mocks for one successful donation run.
func (f *autopayFixture) expectDonation(userID uint, c *models.Case, amount, balanceAfter int64) {
	f.wallets.On("Debit", userID, amount).Return(&models.Wallet{UserID: userID, BalanceCents: balanceAfter}, nil)
	f.cases.On("AddRaised", c, amount).Return(nil)
	f.donations.On("Create", mock.Anything).Return(nil)
	f.txns.On("Create", mock.Anything).Return(nil)
	f.users.On("GetByID", userID).Return(&models.User{ID: userID}, nil)
	f.users.On("UpdateStreak", mock.Anything).Return(nil)
}

func caseID(id uint) *uint { return &id }

func TestAutopay_DisabledDoesNotFire(t *testing.T) {
	f := newAutopayFixture()
	f.autopay.On("GetOrCreate", uint(1)).Return(&models.AutopayConfig{UserID: 1, Enabled: false, AmountCents: 100}, nil)

	fired, err := f.svc.Evaluate(1, ts("2025-03-10 09:00:00"))
	assert.NoError(t, err)
	assert.False(t, fired)
	f.wallets.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything)
}

func TestAutopay_ZeroAmountDoesNotFire(t *testing.T) {
	f := newAutopayFixture()
	f.autopay.On("GetOrCreate", uint(1)).Return(&models.AutopayConfig{UserID: 1, Enabled: true, AmountCents: 0}, nil)

	fired, err := f.svc.Evaluate(1, ts("2025-03-10 09:00:00"))
	assert.NoError(t, err)
	assert.False(t, fired)
}

func TestAutopay_WithinIntervalDoesNotFire(t *testing.T) {
	f := newAutopayFixture()
	lastRun := ts("2025-03-10 09:00:00")
	f.autopay.On("GetOrCreate", uint(1)).Return(&models.AutopayConfig{
		UserID: 1, Enabled: true, AmountCents: 100, CaseID: caseID(3), LastRunAt: &lastRun,
	}, nil)
	f.cases.On("GetByID", uint(3)).Return(&models.Case{ID: 3, GoalCents: 1_000, Status: domain.CaseStatusOpen}, nil)

	fired, err := f.svc.Evaluate(1, ts("2025-03-11 08:59:59"))
	assert.NoError(t, err)
	assert.False(t, fired)
	f.autopay.AssertNotCalled(t, "Save", mock.Anything)
}

func TestAutopay_LowBalanceDoesNotFire(t *testing.T) {
	f := newAutopayFixture()
	f.autopay.On("GetOrCreate", uint(1)).Return(&models.AutopayConfig{
		UserID: 1, Enabled: true, AmountCents: 500, CaseID: caseID(3),
	}, nil)
	f.cases.On("GetByID", uint(3)).Return(&models.Case{ID: 3, GoalCents: 1_000, Status: domain.CaseStatusOpen}, nil)
	f.wallets.On("GetOrCreate", uint(1)).Return(&models.Wallet{UserID: 1, BalanceCents: 499}, nil)

	fired, err := f.svc.Evaluate(1, ts("2025-03-10 09:00:00"))
	assert.NoError(t, err)
	assert.False(t, fired)
	f.wallets.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything)
}

func TestAutopay_FiresOnFirstRun(t *testing.T) {
	f := newAutopayFixture()
	now := ts("2025-03-10 09:00:00")
	ap := &models.AutopayConfig{UserID: 1, Enabled: true, AmountCents: 100, CaseID: caseID(3)}
	c := &models.Case{ID: 3, GoalCents: 100_000, RaisedCents: 0, Status: domain.CaseStatusOpen}
	f.autopay.On("GetOrCreate", uint(1)).Return(ap, nil)
	f.cases.On("GetByID", uint(3)).Return(c, nil)
	f.wallets.On("GetOrCreate", uint(1)).Return(&models.Wallet{UserID: 1, BalanceCents: 1_000}, nil)
	f.expectDonation(1, c, 100, 900)
	f.autopay.On("Save", ap).Return(nil)

	fired, err := f.svc.Evaluate(1, now)
	assert.NoError(t, err)
	assert.True(t, fired)
	assert.Equal(t, now, *ap.LastRunAt)
	assert.Equal(t, uint(3), *ap.CaseID)
	f.autopay.AssertExpectations(t)
}

func TestAutopay_FiresAfterInterval(t *testing.T) {
	f := newAutopayFixture()
	lastRun := ts("2025-03-09 08:00:00")
	now := ts("2025-03-10 09:00:00")
	ap := &models.AutopayConfig{UserID: 1, Enabled: true, AmountCents: 100, CaseID: caseID(3), LastRunAt: &lastRun}
	c := &models.Case{ID: 3, GoalCents: 100_000, Status: domain.CaseStatusOpen}
	f.autopay.On("GetOrCreate", uint(1)).Return(ap, nil)
	f.cases.On("GetByID", uint(3)).Return(c, nil)
	f.wallets.On("GetOrCreate", uint(1)).Return(&models.Wallet{UserID: 1, BalanceCents: 1_000}, nil)
	f.expectDonation(1, c, 100, 900)
	f.autopay.On("Save", ap).Return(nil)

	fired, err := f.svc.Evaluate(1, now)
	assert.NoError(t, err)
	assert.True(t, fired)
	assert.Equal(t, now, *ap.LastRunAt)
}

func TestAutopay_RetargetsWhenConfiguredCaseFunded(t *testing.T) {
	f := newAutopayFixture()
	ap := &models.AutopayConfig{UserID: 1, Enabled: true, AmountCents: 100, CaseID: caseID(3)}
	next := &models.Case{ID: 4, GoalCents: 100_000, Status: domain.CaseStatusOpen}
	f.autopay.On("GetOrCreate", uint(1)).Return(ap, nil)
	f.cases.On("GetByID", uint(3)).Return(&models.Case{ID: 3, Status: domain.CaseStatusFunded}, nil)
	f.cases.On("GetByID", uint(4)).Return(next, nil)
	f.cases.On("NextOpen", uint(3)).Return(next, nil)
	f.wallets.On("GetOrCreate", uint(1)).Return(&models.Wallet{UserID: 1, BalanceCents: 1_000}, nil)
	f.expectDonation(1, next, 100, 900)
	f.autopay.On("Save", ap).Return(nil)

	fired, err := f.svc.Evaluate(1, ts("2025-03-10 09:00:00"))
	assert.NoError(t, err)
	assert.True(t, fired)
	assert.Equal(t, uint(4), *ap.CaseID)
}

func TestAutopay_NoOpenCaseDoesNotFire(t *testing.T) {
	f := newAutopayFixture()
	f.autopay.On("GetOrCreate", uint(1)).Return(&models.AutopayConfig{UserID: 1, Enabled: true, AmountCents: 100}, nil)
	f.cases.On("NextOpen", uint(0)).Return(nil, nil)

	fired, err := f.svc.Evaluate(1, ts("2025-03-10 09:00:00"))
	assert.NoError(t, err)
	assert.False(t, fired)
	f.autopay.AssertNotCalled(t, "Save", mock.Anything)
}

func TestAutopay_AdvancesAfterFundingTarget(t *testing.T) {
	f := newAutopayFixture()
	ap := &models.AutopayConfig{UserID: 1, Enabled: true, AmountCents: 100, CaseID: caseID(3)}
	// 100 cents away from the goal; this run funds it.
	c := &models.Case{ID: 3, GoalCents: 1_000, RaisedCents: 900, Status: domain.CaseStatusOpen}
	next := &models.Case{ID: 4, GoalCents: 100_000, Status: domain.CaseStatusOpen}
	f.autopay.On("GetOrCreate", uint(1)).Return(ap, nil)
	f.cases.On("GetByID", uint(3)).Return(c, nil)
	f.wallets.On("GetOrCreate", uint(1)).Return(&models.Wallet{UserID: 1, BalanceCents: 1_000}, nil)
	f.expectDonation(1, c, 100, 900)
	f.cases.On("NextOpen", uint(3)).Return(next, nil)
	f.autopay.On("Save", ap).Return(nil)

	fired, err := f.svc.Evaluate(1, ts("2025-03-10 09:00:00"))
	assert.NoError(t, err)
	assert.True(t, fired)
	assert.Equal(t, domain.CaseStatusFunded, c.Status)
	assert.Equal(t, uint(4), *ap.CaseID)
}

func TestAutopay_ClearsTargetWhenEverythingFunded(t *testing.T) {
	f := newAutopayFixture()
	ap := &models.AutopayConfig{UserID: 1, Enabled: true, AmountCents: 100, CaseID: caseID(3)}
	c := &models.Case{ID: 3, GoalCents: 1_000, RaisedCents: 950, Status: domain.CaseStatusOpen}
	f.autopay.On("GetOrCreate", uint(1)).Return(ap, nil)
	f.cases.On("GetByID", uint(3)).Return(c, nil)
	f.wallets.On("GetOrCreate", uint(1)).Return(&models.Wallet{UserID: 1, BalanceCents: 1_000}, nil)
	f.expectDonation(1, c, 100, 900)
	f.cases.On("NextOpen", uint(3)).Return(nil, nil)
	f.autopay.On("Save", ap).Return(nil)

	fired, err := f.svc.Evaluate(1, ts("2025-03-10 09:00:00"))
	assert.NoError(t, err)
	assert.True(t, fired)
	assert.Nil(t, ap.CaseID)
}
