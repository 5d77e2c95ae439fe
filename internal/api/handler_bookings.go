package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ratheesh-12/HostelMS/internal/model"
	"github.com/ratheesh-12/HostelMS/internal/mw"
	"github.com/ratheesh-12/HostelMS/internal/store"
)

type createBookingRequest struct {
	RoomID string `json:"roomId" binding:"required"`
}

type decideBookingRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListBookings handles GET /api/bookings. Students see only their own
// bookings; staff and admins see everything.
func (h *Handler) ListBookings(c *gin.Context) {
	user := mw.CurrentUser(c)
	if user.Role == model.RoleStudent {
		c.JSON(http.StatusOK, h.store.BookingsByStudent(user.ID))
		return
	}
	c.JSON(http.StatusOK, h.store.Bookings())
}

// CreateBooking handles POST /api/bookings. The student's claim starts
// pending; room and hostel names are denormalized at creation time.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, ok := h.store.Room(req.RoomID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	hostelName := "Unknown Hostel"
	if hostel, ok := h.store.Hostel(room.HostelID); ok {
		hostelName = hostel.Name
	}

	user := mw.CurrentUser(c)
	booking := h.store.AddBooking(model.Booking{
		StudentID:   user.ID,
		StudentName: user.Name,
		RoomID:      room.ID,
		RoomNumber:  room.Number,
		HostelID:    room.HostelID,
		HostelName:  hostelName,
		Status:      model.BookingPending,
		BookingDate: time.Now().Format("2006-01-02"),
	})
	h.invalidate()
	c.JSON(http.StatusCreated, booking)
}

// DecideBooking handles PATCH /api/bookings/:id. Staff and admins approve
// or reject; a student may only cancel their own booking.
func (h *Handler) DecideBooking(c *gin.Context) {
	var req decideBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, ok := h.store.Booking(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}

	status := model.BookingStatus(req.Status)
	user := mw.CurrentUser(c)

	switch user.Role {
	case model.RoleStudent:
		if status != model.BookingCancelled {
			c.JSON(http.StatusForbidden, gin.H{"error": "students may only cancel bookings"})
			return
		}
		if booking.StudentID != user.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
			return
		}
	case model.RoleAdmin, model.RoleStaff:
		if status != model.BookingApproved && status != model.BookingRejected && status != model.BookingCancelled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking status"})
			return
		}
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		return
	}

	updated, _ := h.store.UpdateBooking(booking.ID, store.BookingPatch{Status: &status})
	h.invalidate()

	switch status {
	case model.BookingApproved:
		n := h.store.AddNotification(booking.StudentID, "Your booking has been approved", model.NotifySuccess)
		h.dispatch(n.ID)
	case model.BookingRejected:
		n := h.store.AddNotification(booking.StudentID,
			fmt.Sprintf("Your booking for room %s has been rejected", booking.RoomNumber), model.NotifyError)
		h.dispatch(n.ID)
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (h *Handler) DeleteBooking(c *gin.Context) {
	if !h.store.DeleteBooking(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	h.invalidate()
	c.Status(http.StatusNoContent)
}

// myRoomResponse joins the student's approved booking with its room and
// hostel records.
type myRoomResponse struct {
	Booking        model.Booking `json:"booking"`
	Room           *model.Room   `json:"room,omitempty"`
	Hostel         *model.Hostel `json:"hostel,omitempty"`
	PriceFormatted string        `json:"priceFormatted,omitempty"`
}

// MyRoom handles GET /api/my-room. Dangling room or hostel references are
// tolerated; the response simply omits the missing side of the join.
func (h *Handler) MyRoom(c *gin.Context) {
	user := mw.CurrentUser(c)

	var booking *model.Booking
	for _, b := range h.store.BookingsByStudent(user.ID) {
		if b.Status == model.BookingApproved {
			found := b
			booking = &found
			break
		}
	}
	if booking == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active booking"})
		return
	}

	resp := myRoomResponse{Booking: *booking}
	if room, ok := h.store.Room(booking.RoomID); ok {
		resp.Room = &room
		resp.PriceFormatted = store.FormatPrice(room.Price)
	}
	if hostel, ok := h.store.Hostel(booking.HostelID); ok {
		resp.Hostel = &hostel
	}
	c.JSON(http.StatusOK, resp)
}
