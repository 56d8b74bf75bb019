package handler

import (
	"net/http"

	"giveone/internal/middleware"
	"giveone/internal/repository"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsRepo *repository.SettingsRepository
}

func NewSettingsHandler(settingsRepo *repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	s, err := h.settingsRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}

type UpdateSettingsRequest struct {
	Theme         *string `json:"theme" binding:"omitempty,oneof=light dark"`
	PreferredBank *string `json:"preferred_bank" binding:"omitempty,max=128"`
}

func (h *SettingsHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.settingsRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load settings"})
		return
	}
	if req.Theme != nil {
		s.Theme = *req.Theme
	}
	if req.PreferredBank != nil {
		s.PreferredBank = *req.PreferredBank
	}
	if err := h.settingsRepo.Save(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}
