package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratheesh-12/HostelMS/internal/model"
)

func TestStudentSeesOwnBookingsOnly(t *testing.T) {
	router, s, _ := newTestRouter()
	s.AddBooking(model.Booking{StudentID: "student2", StudentName: "Sarah Johnson", Status: model.BookingPending})

	login(t, router, "student", "student")
	w := doJSON(router, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bookings []model.Booking
	decode(t, w, &bookings)
	require.Len(t, bookings, 1)
	assert.Equal(t, "student1", bookings[0].StudentID)

	// Staff see everything.
	login(t, router, "staff", "staff")
	w = doJSON(router, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &bookings)
	assert.Len(t, bookings, 2)
}

func TestCreateBookingDenormalizesNames(t *testing.T) {
	router, _, _ := newTestRouter()
	login(t, router, "student", "student")

	w := doJSON(router, http.MethodPost, "/api/bookings", gin.H{"roomId": "r4"})
	require.Equal(t, http.StatusCreated, w.Code)

	var b model.Booking
	decode(t, w, &b)
	assert.Equal(t, "b2", b.ID)
	assert.Equal(t, "student1", b.StudentID)
	assert.Equal(t, "John Student", b.StudentName)
	assert.Equal(t, "202", b.RoomNumber)
	assert.Equal(t, "h2", b.HostelID)
	assert.Equal(t, "Maple Residence", b.HostelName)
	assert.Equal(t, model.BookingPending, b.Status)
	assert.NotEmpty(t, b.BookingDate)
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	router, _, _ := newTestRouter()
	login(t, router, "student", "student")

	w := doJSON(router, http.MethodPost, "/api/bookings", gin.H{"roomId": "r999"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApproveBookingNotifiesStudent(t *testing.T) {
	router, s, _ := newTestRouter()
	b := s.AddBooking(model.Booking{StudentID: "student1", StudentName: "John Student", RoomNumber: "202", Status: model.BookingPending})

	login(t, router, "staff", "staff")
	w := doJSON(router, http.MethodPatch, "/api/bookings/"+b.ID, gin.H{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Booking
	decode(t, w, &updated)
	assert.Equal(t, model.BookingApproved, updated.Status)

	notifications := s.NotificationsForUser("student1")
	require.NotEmpty(t, notifications)
	last := notifications[len(notifications)-1]
	assert.Equal(t, "Your booking has been approved", last.Message)
	assert.Equal(t, model.NotifySuccess, last.Type)
	assert.False(t, last.Read)
}

func TestStudentMayOnlyCancelOwnBooking(t *testing.T) {
	router, s, _ := newTestRouter()
	other := s.AddBooking(model.Booking{StudentID: "student2", Status: model.BookingPending})

	login(t, router, "student", "student")

	// Approving is off limits entirely.
	w := doJSON(router, http.MethodPatch, "/api/bookings/b1", gin.H{"status": "approved"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Cancelling someone else's booking is too.
	w = doJSON(router, http.MethodPatch, "/api/bookings/"+other.ID, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Cancelling their own booking works.
	w = doJSON(router, http.MethodPatch, "/api/bookings/b1", gin.H{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated model.Booking
	decode(t, w, &updated)
	assert.Equal(t, model.BookingCancelled, updated.Status)
}

func TestMyRoom(t *testing.T) {
	router, _, _ := newTestRouter()
	login(t, router, "student", "student")

	// Seed booking b1 is approved for room r2 in hostel h1.
	w := doJSON(router, http.MethodGet, "/api/my-room", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Booking        model.Booking `json:"booking"`
		Room           *model.Room   `json:"room"`
		Hostel         *model.Hostel `json:"hostel"`
		PriceFormatted string        `json:"priceFormatted"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "b1", resp.Booking.ID)
	require.NotNil(t, resp.Room)
	assert.Equal(t, "r2", resp.Room.ID)
	require.NotNil(t, resp.Hostel)
	assert.Equal(t, "Sunrise Hostel", resp.Hostel.Name)
	assert.Equal(t, "₹3,500", resp.PriceFormatted)
}

func TestMyRoomToleratesDanglingRoom(t *testing.T) {
	router, s, _ := newTestRouter()
	s.DeleteRoom("r2")

	login(t, router, "student", "student")
	w := doJSON(router, http.MethodGet, "/api/my-room", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Booking model.Booking `json:"booking"`
		Room    *model.Room   `json:"room"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "b1", resp.Booking.ID)
	assert.Nil(t, resp.Room)
}

func TestMyRoomWithoutBooking(t *testing.T) {
	router, s, _ := newTestRouter()
	s.DeleteBooking("b1")

	login(t, router, "student", "student")
	w := doJSON(router, http.MethodGet, "/api/my-room", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
