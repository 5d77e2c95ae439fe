package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratheesh-12/HostelMS/internal/model"
	"github.com/ratheesh-12/HostelMS/internal/mw"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Login validates the mock credential and opens the session. Bad password
// and unknown user are deliberately indistinguishable in the response.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !model.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	user, ok := h.sessions.Login(req.Username, req.Password, model.Role(req.Role))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout clears the session identity and its persisted snapshot.
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.Logout()
	c.Status(http.StatusNoContent)
}

// Me returns the current session identity.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": mw.CurrentUser(c)})
}
