package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratheesh-12/HostelMS/internal/mw"
)

// ListNotifications handles GET /api/notifications, returning only the
// session user's notifications.
func (h *Handler) ListNotifications(c *gin.Context) {
	user := mw.CurrentUser(c)
	c.JSON(http.StatusOK, h.store.NotificationsForUser(user.ID))
}

// MarkNotificationRead handles POST /api/notifications/:id/read. The flag
// only ever flips false to true, so repeating the call is harmless.
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	if !h.store.MarkNotificationRead(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
