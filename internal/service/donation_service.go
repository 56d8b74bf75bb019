package service

import (
	"errors"
	"fmt"
	"time"

	"giveone/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than 0")
	ErrCaseNotFound  = errors.New("case not found")
	ErrCaseFunded    = errors.New("case is already funded")
)

// Notifier receives case updates after a successful donation; the router
// wires it to the live-progress websocket hub.
type Notifier interface {
	CaseUpdated(c *models.Case)
}

// DonationService runs the donate operation: wallet debit, case progress,
// history entry, ledger entry, streak update.
type DonationService struct {
	users     UserStore
	wallets   WalletStore
	cases     CaseStore
	donations DonationStore
	txns      TransactionStore
	notifier  Notifier
}

func NewDonationService(users UserStore, wallets WalletStore, cases CaseStore, donations DonationStore, txns TransactionStore, notifier Notifier) *DonationService {
	return &DonationService{users: users, wallets: wallets, cases: cases, donations: donations, txns: txns, notifier: notifier}
}

// Donate debits the wallet and applies the donation to the case. txnType is
// DONATION for manual gifts and AUTOPAY for scheduled ones; the rules are the
// same either way. Returns the history entry and the updated case.
func (s *DonationService) Donate(userID, caseID uint, amountCents int64, txnType string, now time.Time) (*models.Donation, *models.Case, error) {
	if amountCents <= 0 {
		return nil, nil, ErrInvalidAmount
	}
	c, err := s.cases.GetByID(caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCaseNotFound
		}
		return nil, nil, err
	}
	if !c.IsOpen() {
		return nil, nil, ErrCaseFunded
	}

	w, err := s.wallets.Debit(userID, amountCents)
	if err != nil {
		return nil, nil, err
	}
	if err := s.cases.AddRaised(c, amountCents); err != nil {
		return nil, nil, err
	}

	d := &models.Donation{
		UserID:              userID,
		CaseID:              caseID,
		AmountCents:         amountCents,
		RunningBalanceCents: w.BalanceCents,
		CreatedAt:           now,
	}
	if err := s.donations.Create(d); err != nil {
		return nil, nil, err
	}
	if err := s.txns.Create(&models.WalletTransaction{
		UserID:      userID,
		AmountCents: -amountCents,
		Type:        txnType,
		Reference:   fmt.Sprintf("case:%d", caseID),
		CreatedAt:   now,
	}); err != nil {
		return nil, nil, err
	}

	if err := s.applyStreak(userID, now); err != nil {
		return nil, nil, err
	}
	if s.notifier != nil {
		s.notifier.CaseUpdated(c)
	}
	return d, c, nil
}

func (s *DonationService) applyStreak(userID uint, now time.Time) error {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	u.StreakDays = NextStreak(u.StreakDays, u.StreakLastTS, now)
	ts := now
	u.StreakLastTS = &ts
	return s.users.UpdateStreak(u)
}

// BreakInactiveStreak is the passive check run on every dashboard refresh:
// more than 24h without a donation zeroes the streak without touching the
// last-donation timestamp.
func (s *DonationService) BreakInactiveStreak(userID uint, now time.Time) (*models.User, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u.StreakDays != 0 && StreakBroken(u.StreakLastTS, now) {
		u.StreakDays = 0
		if err := s.users.UpdateStreak(u); err != nil {
			return nil, err
		}
	}
	return u, nil
}
