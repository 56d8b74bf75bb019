package handler

import (
	"net/http"
	"strconv"

	"giveone/internal/domain"
	"giveone/internal/middleware"
	"giveone/internal/models"
	"giveone/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WalletHandler struct {
	walletRepo *repository.WalletRepository
	txnRepo    *repository.TransactionRepository
}

func NewWalletHandler(walletRepo *repository.WalletRepository, txnRepo *repository.TransactionRepository) *WalletHandler {
	return &WalletHandler{walletRepo: walletRepo, txnRepo: txnRepo}
}

// GetBalance returns the current user's wallet balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID := middleware.GetUserID(c)
	w, err := h.walletRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "wallet error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"balance_cents":       w.BalanceCents,
		"last_updated":        w.LastUpdated,
		"topup_presets_cents": domain.TopupPresetsCents,
	})
}

type TopupRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required"`
}

// Topup credits the wallet (simulated funding, no real payment rails).
func (h *WalletHandler) Topup(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AmountCents <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than 0"})
		return
	}
	w, err := h.walletRepo.Credit(userID, req.AmountCents)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "topup failed"})
		return
	}
	_ = h.txnRepo.Create(&models.WalletTransaction{
		UserID:      userID,
		AmountCents: req.AmountCents,
		Type:        domain.TxnTypeTopup,
		Reference:   uuid.New().String(),
	})
	c.JSON(http.StatusOK, gin.H{
		"balance_cents": w.BalanceCents,
		"last_updated":  w.LastUpdated,
	})
}

// GetTransactions returns the newest-first wallet ledger.
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	txns, err := h.txnRepo.ListByUser(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load transactions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txns})
}
