package handler

import (
	"net/http"

	"giveone/internal/middleware"
	"giveone/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AutopayHandler struct {
	autopayRepo *repository.AutopayRepository
	caseRepo    *repository.CaseRepository
}

func NewAutopayHandler(autopayRepo *repository.AutopayRepository, caseRepo *repository.CaseRepository) *AutopayHandler {
	return &AutopayHandler{autopayRepo: autopayRepo, caseRepo: caseRepo}
}

func (h *AutopayHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	ap, err := h.autopayRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load autopay"})
		return
	}
	c.JSON(http.StatusOK, ap)
}

type UpdateAutopayRequest struct {
	Enabled     *bool  `json:"enabled"`
	AmountCents *int64 `json:"amount_cents"`
	CaseID      *uint  `json:"case_id"`
}

// Update changes the autopay rule. The next run happens lazily on a
// dashboard refresh, never on a timer.
func (h *AutopayHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req UpdateAutopayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ap, err := h.autopayRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load autopay"})
		return
	}
	if req.Enabled != nil {
		ap.Enabled = *req.Enabled
	}
	if req.AmountCents != nil {
		if *req.AmountCents <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than 0"})
			return
		}
		ap.AmountCents = *req.AmountCents
	}
	if req.CaseID != nil {
		if *req.CaseID == 0 {
			ap.CaseID = nil
		} else {
			if _, err := h.caseRepo.GetByID(*req.CaseID); err != nil {
				if err == gorm.ErrRecordNotFound {
					c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load case"})
				return
			}
			ap.CaseID = req.CaseID
		}
	}
	if err := h.autopayRepo.Save(ap); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save autopay"})
		return
	}
	c.JSON(http.StatusOK, ap)
}
