package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratheesh-12/HostelMS/internal/model"
	"github.com/ratheesh-12/HostelMS/internal/store"
)

// roomResponse flattens a room with its display price.
type roomResponse struct {
	model.Room
	PriceFormatted string `json:"priceFormatted"`
}

type createRoomRequest struct {
	Number   string `json:"number" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Status   string `json:"status"`
	Price    int    `json:"price"`
	HostelID string `json:"hostelId" binding:"required"`
}

func toRoomResponses(rooms []model.Room) []roomResponse {
	out := make([]roomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, roomResponse{Room: r, PriceFormatted: store.FormatPrice(r.Price)})
	}
	return out
}

// ListRooms handles GET /api/rooms, optionally filtered by hostel_id.
func (h *Handler) ListRooms(c *gin.Context) {
	var rooms []model.Room
	if hostelID := c.Query("hostel_id"); hostelID != "" {
		rooms = h.store.RoomsByHostel(hostelID)
	} else {
		rooms = h.store.Rooms()
	}
	c.JSON(http.StatusOK, toRoomResponses(rooms))
}

// CreateRoom handles POST /api/rooms. New rooms default to available, the
// same default the add-room form uses.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status == "" {
		req.Status = string(model.RoomAvailable)
	}
	if !model.ValidRoomStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown room status"})
		return
	}

	room := h.store.AddRoom(model.Room{
		Number:   req.Number,
		Type:     req.Type,
		Status:   model.RoomStatus(req.Status),
		Price:    req.Price,
		HostelID: req.HostelID,
	})
	h.invalidate()
	c.JSON(http.StatusCreated, roomResponse{Room: room, PriceFormatted: store.FormatPrice(room.Price)})
}

// UpdateRoom handles PATCH /api/rooms/:id (status flips and edits).
func (h *Handler) UpdateRoom(c *gin.Context) {
	var patch store.RoomPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if patch.Status != nil && !model.ValidRoomStatus(string(*patch.Status)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown room status"})
		return
	}

	room, ok := h.store.UpdateRoom(c.Param("id"), patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	h.invalidate()
	c.JSON(http.StatusOK, roomResponse{Room: room, PriceFormatted: store.FormatPrice(room.Price)})
}

// DeleteRoom handles DELETE /api/rooms/:id.
func (h *Handler) DeleteRoom(c *gin.Context) {
	if !h.store.DeleteRoom(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	h.invalidate()
	c.Status(http.StatusNoContent)
}
