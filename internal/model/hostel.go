package model

// Hostel represents a managed residential property containing rooms.
type Hostel struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	TotalRooms     int    `json:"totalRooms"`
	AvailableRooms int    `json:"availableRooms"`
	Image          string `json:"image,omitempty"`
}
