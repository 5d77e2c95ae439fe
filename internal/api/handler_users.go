package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ratheesh-12/HostelMS/internal/model"
	"github.com/ratheesh-12/HostelMS/internal/store"
)

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Role     string `json:"role"`
}

type createStudentRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Room   string `json:"room"`
	Hostel string `json:"hostel"`
}

// ListUsers handles GET /api/users.
func (h *Handler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Users())
}

// CreateUser handles POST /api/users. New accounts default to the student
// role and start active.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Role == "" {
		req.Role = string(model.RoleStudent)
	}
	if !model.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	user := h.store.AddUser(model.User{
		Name:      req.Name,
		Username:  req.Username,
		Email:     req.Email,
		Role:      model.Role(req.Role),
		Status:    model.UserActive,
		CreatedAt: time.Now().Format("2006-01-02"),
		Avatar:    fmt.Sprintf("https://api.dicebear.com/7.x/bottts/svg?seed=%s", req.Username),
	})
	h.invalidate()
	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PATCH /api/users/:id. Role is immutable and not part
// of the patch.
func (h *Handler) UpdateUser(c *gin.Context) {
	var patch store.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := h.store.UpdateUser(c.Param("id"), patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	h.invalidate()
	c.JSON(http.StatusOK, user)
}

// ToggleUserStatus handles PATCH /api/users/:id/status.
func (h *Handler) ToggleUserStatus(c *gin.Context) {
	user, ok := h.store.ToggleUserStatus(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	h.invalidate()
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/:id.
func (h *Handler) DeleteUser(c *gin.Context) {
	if !h.store.DeleteUser(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	h.invalidate()
	c.Status(http.StatusNoContent)
}

// ListStudents handles GET /api/students.
func (h *Handler) ListStudents(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Students())
}

// CreateStudent handles POST /api/students.
func (h *Handler) CreateStudent(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student := h.store.AddStudent(model.Student{
		Name:   req.Name,
		Email:  req.Email,
		Room:   req.Room,
		Hostel: req.Hostel,
		Avatar: fmt.Sprintf("https://api.dicebear.com/7.x/bottts/svg?seed=%s", req.Name),
	})
	h.invalidate()
	c.JSON(http.StatusCreated, student)
}

// ListActivity handles GET /api/activity. The log is immutable; this is
// the only operation it supports.
func (h *Handler) ListActivity(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ActivityLogs())
}
