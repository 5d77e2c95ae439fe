package model

// SessionRecord is a row in the local session slot database. The current
// identity is stored as a JSON snapshot under a fixed key.
type SessionRecord struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"not null"`
}
