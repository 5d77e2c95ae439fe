package model

// BookingStatus is the approval state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a student's claim on a room, subject to staff approval.
//
// Student, room and hostel names are denormalized copies taken at creation
// time; they do not track later renames.
type Booking struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"studentId"`
	StudentName string        `json:"studentName"`
	RoomID      string        `json:"roomId"`
	RoomNumber  string        `json:"roomNumber"`
	HostelID    string        `json:"hostelId"`
	HostelName  string        `json:"hostelName"`
	Status      BookingStatus `json:"status"`
	BookingDate string        `json:"bookingDate"`
}
