package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ratheesh-12/HostelMS/internal/model"
	"github.com/ratheesh-12/HostelMS/internal/mw"
	"github.com/ratheesh-12/HostelMS/internal/store"
)

type createComplaintRequest struct {
	Message  string `json:"message" binding:"required"`
	Category string `json:"category"`
	Priority string `json:"priority"`
}

type respondComplaintRequest struct {
	Response string `json:"response" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

// ListComplaints handles GET /api/complaints with the same role filtering
// as bookings.
func (h *Handler) ListComplaints(c *gin.Context) {
	user := mw.CurrentUser(c)
	if user.Role == model.RoleStudent {
		c.JSON(http.StatusOK, h.store.ComplaintsByStudent(user.ID))
		return
	}
	c.JSON(http.StatusOK, h.store.Complaints())
}

// CreateComplaint handles POST /api/complaints.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := mw.CurrentUser(c)
	complaint := h.store.AddComplaint(model.Complaint{
		StudentID:   user.ID,
		StudentName: user.Name,
		Message:     req.Message,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      model.ComplaintPending,
		Date:        time.Now().Format("2006-01-02"),
	})
	h.invalidate()
	c.JSON(http.StatusCreated, complaint)
}

// RespondComplaint handles PATCH /api/complaints/:id. A resolved complaint
// accepts no further responses; the UI greys the action out, the API
// answers 409.
func (h *Handler) RespondComplaint(c *gin.Context) {
	var req respondComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := model.ComplaintStatus(req.Status)
	if status != model.ComplaintInProgress && status != model.ComplaintResolved {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown complaint status"})
		return
	}

	complaint, ok := h.store.Complaint(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	if complaint.Status == model.ComplaintResolved {
		c.JSON(http.StatusConflict, gin.H{"error": "complaint already resolved"})
		return
	}

	user := mw.CurrentUser(c)
	patch := store.ComplaintPatch{
		Response:  &req.Response,
		Status:    &status,
		StaffID:   &user.ID,
		StaffName: &user.Name,
	}
	if status == model.ComplaintResolved {
		verified := time.Now().Format("2006-01-02")
		patch.VerificationDate = &verified
	}

	updated, _ := h.store.UpdateComplaint(complaint.ID, patch)
	h.invalidate()

	message := "Your complaint is being looked into"
	typ := model.NotifyInfo
	if status == model.ComplaintResolved {
		message = "Your complaint has been resolved"
		typ = model.NotifySuccess
	}
	n := h.store.AddNotification(complaint.StudentID, message, typ)
	h.dispatch(n.ID)

	c.JSON(http.StatusOK, updated)
}

// DeleteComplaint handles DELETE /api/complaints/:id.
func (h *Handler) DeleteComplaint(c *gin.Context) {
	if !h.store.DeleteComplaint(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	h.invalidate()
	c.Status(http.StatusNoContent)
}
