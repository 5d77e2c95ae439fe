package store

import "github.com/ratheesh-12/HostelMS/internal/model"

// BookingPatch carries the fields an update may overwrite.
type BookingPatch struct {
	StudentName *string              `json:"studentName"`
	RoomID      *string              `json:"roomId"`
	RoomNumber  *string              `json:"roomNumber"`
	HostelID    *string              `json:"hostelId"`
	HostelName  *string              `json:"hostelName"`
	Status      *model.BookingStatus `json:"status"`
	BookingDate *string              `json:"bookingDate"`
}

// Bookings returns a copy of the bookings collection.
func (s *Store) Bookings() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// BookingsByStudent returns the bookings filed by the given student.
func (s *Store) BookingsByStudent(studentID string) []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Booking
	for _, b := range s.bookings {
		if b.StudentID == studentID {
			out = append(out, b)
		}
	}
	return out
}

// Booking looks up a booking by id.
func (s *Store) Booking(id string) (model.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

// AddBooking assigns a fresh id and appends the booking. Nothing prevents a
// student from holding several bookings at once.
func (s *Store) AddBooking(b model.Booking) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = nextID("b", &s.bookingSeq)
	s.bookings = append(s.bookings, b)
	return b
}

// UpdateBooking shallow-merges the patch over the stored booking. The store
// does not police status transitions; that is the caller's concern.
func (s *Store) UpdateBooking(id string, p BookingPatch) (model.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookings {
		if b.ID != id {
			continue
		}
		if p.StudentName != nil {
			b.StudentName = *p.StudentName
		}
		if p.RoomID != nil {
			b.RoomID = *p.RoomID
		}
		if p.RoomNumber != nil {
			b.RoomNumber = *p.RoomNumber
		}
		if p.HostelID != nil {
			b.HostelID = *p.HostelID
		}
		if p.HostelName != nil {
			b.HostelName = *p.HostelName
		}
		if p.Status != nil {
			b.Status = *p.Status
		}
		if p.BookingDate != nil {
			b.BookingDate = *p.BookingDate
		}
		s.bookings[i] = b
		return b, true
	}
	return model.Booking{}, false
}

// DeleteBooking removes the booking with the given id, if present.
func (s *Store) DeleteBooking(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return true
		}
	}
	return false
}
