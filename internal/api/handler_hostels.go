package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratheesh-12/HostelMS/internal/model"
	"github.com/ratheesh-12/HostelMS/internal/store"
)

type createHostelRequest struct {
	Name           string `json:"name" binding:"required"`
	Location       string `json:"location" binding:"required"`
	TotalRooms     int    `json:"totalRooms"`
	AvailableRooms int    `json:"availableRooms"`
	Image          string `json:"image"`
}

// ListHostels handles GET /api/hostels. Public: the landing page shows the
// hostel catalogue before login.
func (h *Handler) ListHostels(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Hostels())
}

// GetHostel handles GET /api/hostels/:id.
func (h *Handler) GetHostel(c *gin.Context) {
	hostel, ok := h.store.Hostel(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "hostel not found"})
		return
	}
	c.JSON(http.StatusOK, hostel)
}

// CreateHostel handles POST /api/hostels.
func (h *Handler) CreateHostel(c *gin.Context) {
	var req createHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hostel := h.store.AddHostel(model.Hostel{
		Name:           req.Name,
		Location:       req.Location,
		TotalRooms:     req.TotalRooms,
		AvailableRooms: req.AvailableRooms,
		Image:          req.Image,
	})
	h.invalidate()
	c.JSON(http.StatusCreated, hostel)
}

// UpdateHostel handles PATCH /api/hostels/:id.
func (h *Handler) UpdateHostel(c *gin.Context) {
	var patch store.HostelPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hostel, ok := h.store.UpdateHostel(c.Param("id"), patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "hostel not found"})
		return
	}
	h.invalidate()
	c.JSON(http.StatusOK, hostel)
}

// DeleteHostel handles DELETE /api/hostels/:id.
func (h *Handler) DeleteHostel(c *gin.Context) {
	if !h.store.DeleteHostel(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "hostel not found"})
		return
	}
	h.invalidate()
	c.Status(http.StatusNoContent)
}
