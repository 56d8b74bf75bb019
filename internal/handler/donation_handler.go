package handler

import (
	"net/http"
	"strconv"
	"time"

	"giveone/internal/domain"
	"giveone/internal/middleware"
	"giveone/internal/models"
	"giveone/internal/repository"
	"giveone/internal/service"

	"github.com/gin-gonic/gin"
)

// Donator is the slice of DonationService the handler needs.
type Donator interface {
	Donate(userID, caseID uint, amountCents int64, txnType string, now time.Time) (*models.Donation, *models.Case, error)
}

type DonationHandler struct {
	svc          Donator
	donationRepo *repository.DonationRepository
}

func NewDonationHandler(svc Donator, donationRepo *repository.DonationRepository) *DonationHandler {
	return &DonationHandler{svc: svc, donationRepo: donationRepo}
}

type DonateRequest struct {
	CaseID      uint  `json:"case_id" binding:"required"`
	AmountCents int64 `json:"amount_cents" binding:"required"`
}

func (h *DonationHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, cs, err := h.svc.Donate(userID, req.CaseID, req.AmountCents, domain.TxnTypeDonation, time.Now())
	if err != nil {
		switch err {
		case service.ErrInvalidAmount:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case service.ErrCaseNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case service.ErrCaseFunded:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case repository.ErrInsufficientBalance:
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "donation failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"donation": d, "case": cs})
}

// ListMine returns the user's donation history, newest first.
func (h *DonationHandler) ListMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	donations, err := h.donationRepo.ListByUser(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load donations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"donations": donations})
}

// MonthTotal returns the sum donated inside the current calendar month.
func (h *DonationHandler) MonthTotal(c *gin.Context) {
	userID := middleware.GetUserID(c)
	total, err := h.donationRepo.MonthTotal(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute total"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"month_total_cents": total})
}
