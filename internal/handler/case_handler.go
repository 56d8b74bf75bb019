package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"giveone/internal/models"
	"giveone/internal/repository"
	"giveone/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CaseHandler struct {
	caseRepo *repository.CaseRepository
	cloud    cloudinary.Client
}

func NewCaseHandler(caseRepo *repository.CaseRepository, cloud cloudinary.Client) *CaseHandler {
	return &CaseHandler{caseRepo: caseRepo, cloud: cloud}
}

// List returns cases with goal/raised progress, optionally narrowed by
// ?category= (exact) and ?q= (case-insensitive match on title, org, or
// description).
func (h *CaseHandler) List(c *gin.Context) {
	cases, err := h.caseRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load cases"})
		return
	}
	cases = filterCases(cases, c.Query("category"), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"cases": cases})
}

func filterCases(cases []models.Case, category, q string) []models.Case {
	if category == "" && q == "" {
		return cases
	}
	q = strings.ToLower(q)
	out := make([]models.Case, 0, len(cases))
	for _, cs := range cases {
		if category != "" && cs.Category != category {
			continue
		}
		if q != "" {
			hay := strings.ToLower(cs.Title + " " + cs.OrgName + " " + cs.Description)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		out = append(out, cs)
	}
	return out
}

func (h *CaseHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid case id"})
		return
	}
	cs, err := h.caseRepo.GetByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load case"})
		return
	}
	c.JSON(http.StatusOK, cs)
}

// UploadImage stores a cover image for a case and saves the returned URL.
func (h *CaseHandler) UploadImage(c *gin.Context) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image uploads disabled"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid case id"})
		return
	}
	if _, err := h.caseRepo.GetByID(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load case"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	publicID := fmt.Sprintf("case_%d", id)
	url, _, err := h.cloud.UploadImage(c.Request.Context(), f, "giveone/cases", publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	if err := h.caseRepo.UpdateImageURL(uint(id), url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save image url"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
