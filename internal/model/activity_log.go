package model

// ActivityLog records an administrative action. Entries are immutable once
// created; the store exposes no update or delete for them.
type ActivityLog struct {
	ID         string `json:"id"`
	AdminID    string `json:"adminId"`
	AdminName  string `json:"adminName"`
	Action     string `json:"action"`
	TargetUser string `json:"targetUser,omitempty"`
	Timestamp  string `json:"timestamp"`
}
