// Package store holds the in-memory domain collections behind the dashboard.
// Collections are seeded with demo data at construction and never persisted;
// mutations are synchronous and visible to the next read.
package store

import (
	"fmt"
	"sync"

	"github.com/ratheesh-12/HostelMS/internal/model"
)

// Store owns every domain collection. All methods are safe for concurrent
// use; reads return copies so callers never alias internal state.
type Store struct {
	mu sync.RWMutex

	hostels       []model.Hostel
	rooms         []model.Room
	bookings      []model.Booking
	complaints    []model.Complaint
	documents     []model.Document
	users         []model.User
	students      []model.Student
	activityLogs  []model.ActivityLog
	notifications []model.Notification
	subscriptions []model.PushSubscription

	// Per-collection sequence counters. Generated ids follow the
	// <prefix><seq> pattern; the counter only moves forward, so ids are
	// never reused after a delete.
	hostelSeq    int
	roomSeq      int
	bookingSeq   int
	complaintSeq int
	documentSeq  int
	userSeq      int
	studentSeq   int
	notifySeq    int
}

// New creates a store seeded with the demo collections.
func New() *Store {
	s := &Store{}
	s.seed()
	return s
}

func nextID(prefix string, seq *int) string {
	*seq++
	return fmt.Sprintf("%s%d", prefix, *seq)
}
