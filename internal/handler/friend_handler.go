package handler

import (
	"net/http"
	"strconv"

	"giveone/internal/middleware"
	"giveone/internal/models"
	"giveone/internal/repository"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	friendRepo *repository.FriendRepository
}

func NewFriendHandler(friendRepo *repository.FriendRepository) *FriendHandler {
	return &FriendHandler{friendRepo: friendRepo}
}

func (h *FriendHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	friends, err := h.friendRepo.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load friends"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

type AddFriendRequest struct {
	Username   string `json:"username" binding:"required,min=1,max=64"`
	StreakDays int    `json:"streak_days" binding:"min=0"`
}

// Add records a friend entry for streak comparison; the streak is
// self-reported, nothing links it to a real account.
func (h *FriendHandler) Add(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f := &models.Friend{
		UserID:     userID,
		Username:   req.Username,
		StreakDays: req.StreakDays,
	}
	if err := h.friendRepo.Create(f); err != nil {
		if err == repository.ErrFriendExists {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add friend"})
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FriendHandler) Remove(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid friend id"})
		return
	}
	if err := h.friendRepo.Delete(userID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not remove friend"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}
