package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratheesh-12/HostelMS/internal/model"
)

func TestReportSummary(t *testing.T) {
	router, _, _ := newTestRouter()
	login(t, router, "admin", "admin")

	w := doJSON(router, http.MethodGet, "/api/reports/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Occupancy []struct {
			HostelID    string `json:"hostelId"`
			Occupied    int    `json:"occupied"`
			Available   int    `json:"available"`
			Maintenance int    `json:"maintenance"`
		} `json:"occupancy"`
		RoomTypes       map[string]int `json:"roomTypes"`
		ComplaintCounts map[string]int `json:"complaintCounts"`
	}
	decode(t, w, &summary)

	require.Len(t, summary.Occupancy, 3)
	assert.Equal(t, "h1", summary.Occupancy[0].HostelID)
	assert.Equal(t, 1, summary.Occupancy[0].Available) // r1
	assert.Equal(t, 1, summary.Occupancy[0].Occupied)  // r2
	assert.Equal(t, 1, summary.Occupancy[1].Maintenance)

	assert.Equal(t, 2, summary.RoomTypes["single"])
	assert.Equal(t, 1, summary.RoomTypes["quad"])

	assert.Equal(t, 1, summary.ComplaintCounts["pending"])
	assert.Equal(t, 1, summary.ComplaintCounts["in-progress"])
}

func TestDashboardStatsForStudent(t *testing.T) {
	router, s, _ := newTestRouter()
	s.AddBooking(model.Booking{StudentID: "student2", Status: model.BookingPending})
	s.AddComplaint(model.Complaint{StudentID: "student2", Message: "noise", Status: model.ComplaintPending})

	login(t, router, "student", "student")
	w := doJSON(router, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalHostels        int `json:"totalHostels"`
		TotalRooms          int `json:"totalRooms"`
		AvailableRooms      int `json:"availableRooms"`
		OccupiedRooms       int `json:"occupiedRooms"`
		Bookings            int `json:"bookings"`
		PendingComplaints   int `json:"pendingComplaints"`
		UnreadNotifications int `json:"unreadNotifications"`
	}
	decode(t, w, &stats)

	assert.Equal(t, 3, stats.TotalHostels)
	assert.Equal(t, 5, stats.TotalRooms)
	assert.Equal(t, 3, stats.AvailableRooms)
	assert.Equal(t, 1, stats.OccupiedRooms)

	// Student counts exclude other students' records.
	assert.Equal(t, 1, stats.Bookings)
	assert.Equal(t, 1, stats.PendingComplaints)
	assert.Equal(t, 1, stats.UnreadNotifications)
}

func TestDashboardStatsForAdmin(t *testing.T) {
	router, s, _ := newTestRouter()
	s.AddBooking(model.Booking{StudentID: "student2", Status: model.BookingPending})

	login(t, router, "admin", "admin")
	w := doJSON(router, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Bookings          int `json:"bookings"`
		PendingComplaints int `json:"pendingComplaints"`
	}
	decode(t, w, &stats)
	assert.Equal(t, 2, stats.Bookings)
	assert.Equal(t, 1, stats.PendingComplaints)
}
