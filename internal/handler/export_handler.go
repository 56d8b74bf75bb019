package handler

import (
	"fmt"
	"net/http"
	"time"

	"giveone/internal/middleware"
	"giveone/internal/models"
	"giveone/internal/repository"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	userRepo     *repository.UserRepository
	walletRepo   *repository.WalletRepository
	caseRepo     *repository.CaseRepository
	donationRepo *repository.DonationRepository
	friendRepo   *repository.FriendRepository
	settingsRepo *repository.SettingsRepository
	autopayRepo  *repository.AutopayRepository
}

func NewExportHandler(userRepo *repository.UserRepository, walletRepo *repository.WalletRepository, caseRepo *repository.CaseRepository, donationRepo *repository.DonationRepository, friendRepo *repository.FriendRepository, settingsRepo *repository.SettingsRepository, autopayRepo *repository.AutopayRepository) *ExportHandler {
	return &ExportHandler{
		userRepo:     userRepo,
		walletRepo:   walletRepo,
		caseRepo:     caseRepo,
		donationRepo: donationRepo,
		friendRepo:   friendRepo,
		settingsRepo: settingsRepo,
		autopayRepo:  autopayRepo,
	}
}

// Snapshot is the on-demand dump of everything the user sees in the app.
type Snapshot struct {
	ExportedAt time.Time             `json:"exported_at"`
	User       *models.User          `json:"user"`
	Wallet     *models.Wallet        `json:"wallet"`
	Cases      []models.Case         `json:"cases"`
	Donations  []models.Donation     `json:"donations"`
	Friends    []models.Friend       `json:"friends"`
	Settings   *models.UserSettings  `json:"settings"`
	Autopay    *models.AutopayConfig `json:"autopay"`
}

// Export returns the snapshot as a downloadable, timestamped JSON file.
func (h *ExportHandler) Export(c *gin.Context) {
	userID := middleware.GetUserID(c)
	now := time.Now()

	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	w, err := h.walletRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	cases, err := h.caseRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	donations, err := h.donationRepo.ListByUser(userID, 500)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	friends, err := h.friendRepo.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	settings, err := h.settingsRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	autopay, err := h.autopayRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	filename := fmt.Sprintf("giveone_export_%s.json", now.Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.JSON(http.StatusOK, Snapshot{
		ExportedAt: now,
		User:       u,
		Wallet:     w,
		Cases:      cases,
		Donations:  donations,
		Friends:    friends,
		Settings:   settings,
		Autopay:    autopay,
	})
}
