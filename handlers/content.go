package handlers

import (
	"errors"
	"net/http"

	"amonarq/models"
	"amonarq/services/content"
	"amonarq/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler exposes the content section endpoints.
type ContentHandler struct {
	Service content.ContentService
}

// NewContentHandler creates a new ContentHandler instance.
func NewContentHandler(svc content.ContentService) *ContentHandler {
	return &ContentHandler{Service: svc}
}

// ListContentHandler handles GET /api/content. Public: returns all
// non-deleted sections sorted by (order, sectionId).
func (h *ContentHandler) ListContentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	sections, err := h.Service.ListSections()
	if err != nil {
		logger.Error("Failed to list content sections", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if sections == nil {
		sections = []models.ContentSection{}
	}
	c.JSON(http.StatusOK, sections)
}

// EffectiveContentHandler handles GET /api/content/effective. Public:
// returns the defaults merged with the persisted sections, ready to render.
func (h *ContentHandler) EffectiveContentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	sections, err := h.Service.EffectiveSections()
	if err != nil {
		logger.Error("Failed to build effective content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sections)
}

// UpsertSectionHandler handles PUT /api/content/:sectionId. Full-field
// upsert of one section.
func (h *ContentHandler) UpsertSectionHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var input models.SectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.SectionID = c.Param("sectionId")

	section, err := h.Service.UpsertSection(input)
	if err != nil {
		if errors.Is(err, content.ErrMissingSectionID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to upsert section", zap.String("sectionId", input.SectionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, section)
}

// BulkUpsertHandler handles POST /api/content/bulk-upsert. Entries without
// a sectionId are dropped; an entirely invalid batch is a 400. Returns the
// full refreshed non-deleted set so the caller can resynchronize its view.
func (h *ContentHandler) BulkUpsertHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Sections []models.SectionInput `json:"sections"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sections array is required"})
		return
	}

	sections, err := h.Service.BulkUpsert(req.Sections)
	if err != nil {
		if errors.Is(err, content.ErrEmptyBatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to bulk upsert sections", zap.Int("count", len(req.Sections)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if sections == nil {
		sections = []models.ContentSection{}
	}
	c.JSON(http.StatusOK, sections)
}

// CreateSectionHandler handles POST /api/content/sections. Creates a new
// section in a group, shifting the siblings after the insertion point.
func (h *ContentHandler) CreateSectionHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req content.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	section, all, err := h.Service.CreateSection(req)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrUnknownGroup), errors.Is(err, content.ErrInvalidName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, content.ErrSectionExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create section", zap.String("name", req.Name), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"section": section, "sections": all})
}

// DeleteSectionHandler handles DELETE /api/content/:sectionId. Soft delete:
// the row is tombstoned, not removed.
func (h *ContentHandler) DeleteSectionHandler(c *gin.Context) {
	logger := utils.GetLogger()
	sectionID := c.Param("sectionId")
	if err := h.Service.DeleteSection(sectionID); err != nil {
		if errors.Is(err, content.ErrMissingSectionID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to delete section", zap.String("sectionId", sectionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section deleted successfully (hidden from frontend)."})
}
