package handlers

import (
	"net/http"

	"amonarq/config"
	"amonarq/services/mailer"
	"amonarq/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmailHandler exposes the mail configuration check endpoint.
type EmailHandler struct {
	Mailer mailer.Mailer
}

// NewEmailHandler creates a new EmailHandler instance.
func NewEmailHandler(m mailer.Mailer) *EmailHandler {
	return &EmailHandler{Mailer: m}
}

// TestEmailHandler handles POST /api/email/test (admin).
func (h *EmailHandler) TestEmailHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Email string `json:"email"`
	}
	// Body is optional; fall back to the configured sender address.
	_ = c.ShouldBindJSON(&req)
	if req.Email == "" {
		req.Email = config.AppConfig.EmailUser
	}

	if err := h.Mailer.SendTest(req.Email); err != nil {
		logger.Error("Test email failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Test email sent successfully"})
}
