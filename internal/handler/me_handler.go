package handler

import (
	"log"
	"net/http"
	"time"

	"giveone/internal/middleware"
	"giveone/internal/repository"
	"giveone/internal/service"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	userRepo     *repository.UserRepository
	walletRepo   *repository.WalletRepository
	caseRepo     *repository.CaseRepository
	donationRepo *repository.DonationRepository
	autopayRepo  *repository.AutopayRepository
	donationSvc  *service.DonationService
	autopaySvc   *service.AutopayService
}

func NewMeHandler(userRepo *repository.UserRepository, walletRepo *repository.WalletRepository, caseRepo *repository.CaseRepository, donationRepo *repository.DonationRepository, autopayRepo *repository.AutopayRepository, donationSvc *service.DonationService, autopaySvc *service.AutopayService) *MeHandler {
	return &MeHandler{
		userRepo:     userRepo,
		walletRepo:   walletRepo,
		caseRepo:     caseRepo,
		donationRepo: donationRepo,
		autopayRepo:  autopayRepo,
		donationSvc:  donationSvc,
		autopaySvc:   autopaySvc,
	}
}

func (h *MeHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":         u,
		"display_name": u.DisplayName(),
	})
}

func (h *MeHandler) GetStreak(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"streak_days":    u.StreakDays,
		"streak_last_ts": u.StreakLastTS,
	})
}

// GetDashboard is the backend counterpart of a UI refresh: it runs the
// passive streak-inactivity reset and the autopay evaluation, then returns
// the aggregated view.
func (h *MeHandler) GetDashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)
	now := time.Now()

	u, err := h.donationSvc.BreakInactiveStreak(userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "refresh failed"})
		return
	}
	autopayFired, err := h.autopaySvc.Evaluate(userID, now)
	if err != nil {
		// Autopay failure should not take the whole dashboard down.
		log.Printf("[autopay] evaluate failed: user=%d err=%v", userID, err)
	}
	if autopayFired {
		// Streak may have changed with the autopay donation.
		if u, err = h.userRepo.GetByID(userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "refresh failed"})
			return
		}
	}

	w, err := h.walletRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "wallet error"})
		return
	}
	monthTotal, err := h.donationRepo.MonthTotal(userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute total"})
		return
	}
	cases, err := h.caseRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load cases"})
		return
	}
	ap, err := h.autopayRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load autopay"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wallet": gin.H{
			"balance_cents": w.BalanceCents,
			"last_updated":  w.LastUpdated,
		},
		"streak_days":       u.StreakDays,
		"streak_last_ts":    u.StreakLastTS,
		"month_total_cents": monthTotal,
		"autopay":           ap,
		"autopay_fired":     autopayFired,
		"cases":             cases,
	})
}
