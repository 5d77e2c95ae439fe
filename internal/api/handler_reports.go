package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratheesh-12/HostelMS/internal/model"
	"github.com/ratheesh-12/HostelMS/internal/mw"
)

// hostelOccupancy is the per-hostel room breakdown on the reports page.
type hostelOccupancy struct {
	HostelID    string `json:"hostelId"`
	HostelName  string `json:"hostelName"`
	Occupied    int    `json:"occupied"`
	Available   int    `json:"available"`
	Maintenance int    `json:"maintenance"`
}

type reportSummary struct {
	Occupancy       []hostelOccupancy `json:"occupancy"`
	RoomTypes       map[string]int    `json:"roomTypes"`
	ComplaintCounts map[string]int    `json:"complaintCounts"`
}

// ReportSummary handles GET /api/reports/summary.
func (h *Handler) ReportSummary(c *gin.Context) {
	rooms := h.store.Rooms()

	summary := reportSummary{
		RoomTypes:       map[string]int{},
		ComplaintCounts: map[string]int{},
	}

	byHostel := make(map[string]*hostelOccupancy)
	for _, hostel := range h.store.Hostels() {
		occ := &hostelOccupancy{HostelID: hostel.ID, HostelName: hostel.Name}
		byHostel[hostel.ID] = occ
	}

	for _, r := range rooms {
		summary.RoomTypes[r.Type]++

		occ, ok := byHostel[r.HostelID]
		if !ok {
			// Room pointing at a deleted hostel; nothing to attribute.
			continue
		}
		switch r.Status {
		case model.RoomOccupied:
			occ.Occupied++
		case model.RoomAvailable:
			occ.Available++
		case model.RoomMaintenance:
			occ.Maintenance++
		}
	}

	for _, hostel := range h.store.Hostels() {
		summary.Occupancy = append(summary.Occupancy, *byHostel[hostel.ID])
	}

	for _, cm := range h.store.Complaints() {
		summary.ComplaintCounts[string(cm.Status)]++
	}

	c.JSON(http.StatusOK, summary)
}

// dashboardStats backs the landing cards on the dashboard index page.
type dashboardStats struct {
	TotalHostels        int `json:"totalHostels"`
	TotalRooms          int `json:"totalRooms"`
	AvailableRooms      int `json:"availableRooms"`
	OccupiedRooms       int `json:"occupiedRooms"`
	Bookings            int `json:"bookings"`
	PendingComplaints   int `json:"pendingComplaints"`
	UnreadNotifications int `json:"unreadNotifications"`
}

// DashboardStats handles GET /api/dashboard/stats. Booking and complaint
// counts are scoped to the student's own records for student sessions.
func (h *Handler) DashboardStats(c *gin.Context) {
	user := mw.CurrentUser(c)

	stats := dashboardStats{TotalHostels: len(h.store.Hostels())}

	for _, r := range h.store.Rooms() {
		stats.TotalRooms++
		switch r.Status {
		case model.RoomAvailable:
			stats.AvailableRooms++
		case model.RoomOccupied:
			stats.OccupiedRooms++
		}
	}

	bookings := h.store.Bookings()
	complaints := h.store.Complaints()
	if user.Role == model.RoleStudent {
		bookings = h.store.BookingsByStudent(user.ID)
		complaints = h.store.ComplaintsByStudent(user.ID)
	}
	stats.Bookings = len(bookings)
	for _, cm := range complaints {
		if cm.Status == model.ComplaintPending {
			stats.PendingComplaints++
		}
	}

	for _, n := range h.store.NotificationsForUser(user.ID) {
		if !n.Read {
			stats.UnreadNotifications++
		}
	}

	c.JSON(http.StatusOK, stats)
}
