package model

// ComplaintStatus tracks a complaint through its lifecycle.
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in-progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

// Complaint is a student-filed issue with an optional staff response.
// Status transitions are caller-driven; the store does not enforce an order.
type Complaint struct {
	ID               string          `json:"id"`
	StudentID        string          `json:"studentId"`
	StudentName      string          `json:"studentName"`
	Message          string          `json:"message"`
	Category         string          `json:"category,omitempty"`
	Priority         string          `json:"priority,omitempty"` // low, medium, high
	Response         string          `json:"response,omitempty"`
	Status           ComplaintStatus `json:"status"`
	StaffID          string          `json:"staffId,omitempty"`
	StaffName        string          `json:"staffName,omitempty"`
	Date             string          `json:"date"`
	VerificationDate string          `json:"verificationDate,omitempty"`
}
