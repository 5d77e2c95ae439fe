package model

// DocumentStatus is the review state of an uploaded document.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

// Document is a student-submitted file pending staff review. There is no
// real file storage; FileURL and FileSize are descriptive only.
type Document struct {
	ID         string         `json:"id"`
	StudentID  string         `json:"studentId"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	FileURL    string         `json:"fileUrl,omitempty"`
	FileSize   string         `json:"fileSize"`
	UploadDate string         `json:"uploadDate"`
	Status     DocumentStatus `json:"status"`
	Comments   string         `json:"comments,omitempty"`
}
