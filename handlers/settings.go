package handlers

import (
	"net/http"

	"amonarq/services/settings"
	"amonarq/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler exposes the singleton settings endpoints.
type SettingsHandler struct {
	Service settings.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler instance.
func NewSettingsHandler(svc settings.SettingsService) *SettingsHandler {
	return &SettingsHandler{Service: svc}
}

// GetSettingsHandler handles GET /api/settings. Public; the record is
// lazily created on the first read.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	// Prevent caching so the public site always sees fresh data.
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")

	stored, err := h.Service.Get()
	if err != nil {
		logger.Error("Failed to fetch settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stored)
}

// UpdateSettingsHandler handles PUT /api/settings (admin).
func (h *SettingsHandler) UpdateSettingsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req settings.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.Update(req)
	if err != nil {
		logger.Error("Failed to update settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
