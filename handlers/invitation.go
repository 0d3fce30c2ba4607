package handlers

import (
	"errors"
	"net/http"

	"amonarq/services/invitation"
	"amonarq/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvitationHandler exposes the invitation lifecycle endpoints.
type InvitationHandler struct {
	Service invitation.InvitationService
}

// NewInvitationHandler creates a new InvitationHandler instance.
func NewInvitationHandler(svc invitation.InvitationService) *InvitationHandler {
	return &InvitationHandler{Service: svc}
}

// SendInvitationHandler handles POST /api/invitations/send (superadmin).
func (h *InvitationHandler) SendInvitationHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Email string `json:"email" binding:"required"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.Service.Send(req.Email, req.Role)
	if err != nil {
		if errors.Is(err, invitation.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to send invitation", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invitation sent successfully", "email": rec.Email})
}

// VerifyInvitationHandler handles GET /api/invitations/verify/:token.
// Read-only and idempotent; safe to call any number of times.
func (h *InvitationHandler) VerifyInvitationHandler(c *gin.Context) {
	token := c.Param("token")
	rec, err := h.Service.Verify(token)
	if err != nil {
		if errors.Is(err, invitation.ErrInvalidOrExpired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": rec.Email, "role": rec.Role})
}

// CompleteInvitationHandler handles POST /api/invitations/complete. Token
// gated, no bearer auth: the token itself is the credential.
func (h *InvitationHandler) CompleteInvitationHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Token    string `json:"token" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.Service.Complete(req.Token, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, invitation.ErrInvalidOrExpired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to complete invitation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration completed successfully", "email": rec.Email})
}
