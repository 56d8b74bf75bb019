package service

import (
	"errors"
	"time"

	"giveone/internal/domain"
	"giveone/internal/models"
	"giveone/internal/repository"

	"gorm.io/gorm"
)

// AutopayService lazily evaluates the recurring-donation rule. There is no
// scheduler; Evaluate runs on every dashboard refresh and fires at most one
// donation per MinInterval.
type AutopayService struct {
	autopay     AutopayStore
	cases       CaseStore
	wallets     WalletStore
	donations   *DonationService
	minInterval time.Duration
}

func NewAutopayService(autopay AutopayStore, cases CaseStore, wallets WalletStore, donations *DonationService, minInterval time.Duration) *AutopayService {
	if minInterval <= 0 {
		minInterval = 24 * time.Hour
	}
	return &AutopayService{autopay: autopay, cases: cases, wallets: wallets, donations: donations, minInterval: minInterval}
}

// Evaluate checks whether the user's autopay should fire at now and, if so,
// runs one donation through the normal path. Returns whether it fired.
//
// Skip conditions, in order: disabled or non-positive amount, no open case to
// target, ran within MinInterval, balance below the configured amount.
func (s *AutopayService) Evaluate(userID uint, now time.Time) (bool, error) {
	ap, err := s.autopay.GetOrCreate(userID)
	if err != nil {
		return false, err
	}
	if !ap.Enabled || ap.AmountCents <= 0 {
		return false, nil
	}

	target, err := s.resolveTarget(ap)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, nil
	}

	if ap.LastRunAt != nil && now.Sub(*ap.LastRunAt) < s.minInterval {
		return false, nil
	}

	w, err := s.wallets.GetOrCreate(userID)
	if err != nil {
		return false, err
	}
	if w.BalanceCents < ap.AmountCents {
		return false, nil
	}

	_, c, err := s.donations.Donate(userID, target.ID, ap.AmountCents, domain.TxnTypeAutopay, now)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientBalance) || errors.Is(err, ErrCaseFunded) {
			return false, nil
		}
		return false, err
	}

	ts := now
	ap.LastRunAt = &ts
	ap.CaseID = &target.ID
	if !c.IsOpen() {
		// Target just got funded; advance to the next open case for the next run.
		next, err := s.cases.NextOpen(c.ID)
		if err != nil {
			return false, err
		}
		if next != nil {
			ap.CaseID = &next.ID
		} else {
			ap.CaseID = nil
		}
	}
	if err := s.autopay.Save(ap); err != nil {
		return false, err
	}
	return true, nil
}

// resolveTarget returns the configured case while it is still open, otherwise
// the first open case excluding it; nil when everything is funded. The config
// is not persisted here — retargeting only sticks when a donation fires.
func (s *AutopayService) resolveTarget(ap *models.AutopayConfig) (*models.Case, error) {
	var exclude uint
	if ap.CaseID != nil {
		c, err := s.cases.GetByID(*ap.CaseID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if c != nil && c.IsOpen() {
			return c, nil
		}
		exclude = *ap.CaseID
	}
	return s.cases.NextOpen(exclude)
}
