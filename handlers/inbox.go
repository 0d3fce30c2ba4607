package handlers

import (
	"errors"
	"net/http"

	"amonarq/services/inbox"
	"amonarq/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InboxHandler exposes the contact-form and inbox management endpoints.
type InboxHandler struct {
	Service inbox.InboxService
}

// NewInboxHandler creates a new InboxHandler instance.
func NewInboxHandler(svc inbox.InboxService) *InboxHandler {
	return &InboxHandler{Service: svc}
}

// SubmitHandler handles POST /api/inbox/submit. Public.
func (h *InboxHandler) SubmitHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Service.Submit(req.Name, req.Email, req.Subject, req.Message); err != nil {
		var verr *inbox.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		logger.Error("Contact submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred. Please try again later."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

// ListMessagesHandler handles GET /api/inbox.
func (h *InboxHandler) ListMessagesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	messages, err := h.Service.ListMessages()
	if err != nil {
		logger.Error("Failed to list inbox messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// MarkReadHandler handles PATCH /api/inbox/:id/read.
func (h *InboxHandler) MarkReadHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	msg, err := h.Service.MarkRead(id)
	if err != nil {
		if errors.Is(err, inbox.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to mark message as read", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msg)
}

// ReplyHandler handles POST /api/inbox/:id/reply.
func (h *InboxHandler) ReplyHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	var req struct {
		ReplyMessage string `json:"replyMessage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.Reply(id, req.ReplyMessage); err != nil {
		if errors.Is(err, inbox.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to send reply", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reply sent successfully"})
}

// DeleteMessageHandler handles DELETE /api/inbox/:id.
func (h *InboxHandler) DeleteMessageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Service.DeleteMessage(id); err != nil {
		if errors.Is(err, inbox.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to delete message", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
