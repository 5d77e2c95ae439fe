package model

// RoomStatus is the occupancy state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// ValidRoomStatus reports whether s is a recognized room status.
func ValidRoomStatus(s string) bool {
	switch RoomStatus(s) {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

// Room is a bookable unit within a hostel.
//
// HostelID is not checked against the hostels collection; readers that join
// across the two collections must handle a missing hostel.
type Room struct {
	ID       string     `json:"id"`
	Number   string     `json:"number"`
	Type     string     `json:"type"` // single, double, triple, quad
	Status   RoomStatus `json:"status"`
	Price    int        `json:"price"`
	HostelID string     `json:"hostelId"`
}
