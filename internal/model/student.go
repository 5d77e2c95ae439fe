package model

// Student is the roster entry shown on the students page. Room and Hostel
// are display labels, not foreign keys.
type Student struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Room   string `json:"room"`
	Hostel string `json:"hostel"`
	Avatar string `json:"avatar,omitempty"`
}
