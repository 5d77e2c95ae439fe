package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ratheesh-12/HostelMS/internal/model"
	"github.com/ratheesh-12/HostelMS/internal/mw"
	"github.com/ratheesh-12/HostelMS/internal/store"
)

type createDocumentRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required"`
	FileURL  string `json:"fileUrl"`
	FileSize string `json:"fileSize"`
}

type reviewDocumentRequest struct {
	Status   string `json:"status" binding:"required"`
	Comments string `json:"comments"`
}

// ListDocuments handles GET /api/documents. Students see their own uploads;
// staff and admins see the full review queue.
func (h *Handler) ListDocuments(c *gin.Context) {
	user := mw.CurrentUser(c)
	if user.Role == model.RoleStudent {
		c.JSON(http.StatusOK, h.store.DocumentsByStudent(user.ID))
		return
	}
	c.JSON(http.StatusOK, h.store.Documents())
}

// CreateDocument handles POST /api/documents. There is no real upload; the
// record carries descriptive metadata only and starts pending review.
func (h *Handler) CreateDocument(c *gin.Context) {
	var req createDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := mw.CurrentUser(c)
	doc := h.store.AddDocument(model.Document{
		StudentID:  user.ID,
		Name:       req.Name,
		Type:       req.Type,
		FileURL:    req.FileURL,
		FileSize:   req.FileSize,
		UploadDate: time.Now().Format("2006-01-02"),
		Status:     model.DocumentPending,
	})
	h.invalidate()
	c.JSON(http.StatusCreated, doc)
}

// ReviewDocument handles PATCH /api/documents/:id (staff review).
func (h *Handler) ReviewDocument(c *gin.Context) {
	var req reviewDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := model.DocumentStatus(req.Status)
	if status != model.DocumentApproved && status != model.DocumentRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown document status"})
		return
	}

	patch := store.DocumentPatch{Status: &status}
	if req.Comments != "" {
		patch.Comments = &req.Comments
	}

	doc, ok := h.store.UpdateDocument(c.Param("id"), patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	h.invalidate()
	c.JSON(http.StatusOK, doc)
}

// DeleteDocument handles DELETE /api/documents/:id. Students may only
// remove their own uploads.
func (h *Handler) DeleteDocument(c *gin.Context) {
	doc, ok := h.store.Document(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}

	user := mw.CurrentUser(c)
	if doc.StudentID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your document"})
		return
	}

	h.store.DeleteDocument(doc.ID)
	h.invalidate()
	c.Status(http.StatusNoContent)
}
