package handlers

import (
	"net/http"

	"amonarq/services/inbox"
	"amonarq/services/user"
	"amonarq/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler exposes the admin dashboard counters.
type DashboardHandler struct {
	InboxSvc inbox.InboxService
	UserSvc  user.UserService
}

// NewDashboardHandler creates a new DashboardHandler instance.
func NewDashboardHandler(inboxSvc inbox.InboxService, userSvc user.UserService) *DashboardHandler {
	return &DashboardHandler{InboxSvc: inboxSvc, UserSvc: userSvc}
}

// StatsHandler handles GET /api/dashboard/stats.
func (h *DashboardHandler) StatsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	inboxCount, pendingCount, err := h.InboxSvc.Stats()
	if err != nil {
		logger.Error("Failed to compute inbox stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	userCount, err := h.UserSvc.CountUsers()
	if err != nil {
		logger.Error("Failed to count users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inboxCount":   inboxCount,
		"pendingCount": pendingCount,
		"userCount":    userCount,
	})
}
