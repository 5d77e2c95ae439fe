package store

import "github.com/ratheesh-12/HostelMS/internal/model"

// HostelPatch carries the fields an update may overwrite. Nil fields are
// left untouched.
type HostelPatch struct {
	Name           *string `json:"name"`
	Location       *string `json:"location"`
	TotalRooms     *int    `json:"totalRooms"`
	AvailableRooms *int    `json:"availableRooms"`
	Image          *string `json:"image"`
}

// Hostels returns a copy of the hostels collection.
func (s *Store) Hostels() []model.Hostel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Hostel, len(s.hostels))
	copy(out, s.hostels)
	return out
}

// Hostel looks up a hostel by id.
func (s *Store) Hostel(id string) (model.Hostel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, h := range s.hostels {
		if h.ID == id {
			return h, true
		}
	}
	return model.Hostel{}, false
}

// AddHostel assigns a fresh id and appends the hostel. Every field of the
// input is stored unchanged.
func (s *Store) AddHostel(h model.Hostel) model.Hostel {
	s.mu.Lock()
	defer s.mu.Unlock()

	h.ID = nextID("h", &s.hostelSeq)
	s.hostels = append(s.hostels, h)
	return h
}

// UpdateHostel shallow-merges the patch over the stored hostel. A missing
// id is a no-op reported by ok=false.
func (s *Store) UpdateHostel(id string, p HostelPatch) (model.Hostel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, h := range s.hostels {
		if h.ID != id {
			continue
		}
		if p.Name != nil {
			h.Name = *p.Name
		}
		if p.Location != nil {
			h.Location = *p.Location
		}
		if p.TotalRooms != nil {
			h.TotalRooms = *p.TotalRooms
		}
		if p.AvailableRooms != nil {
			h.AvailableRooms = *p.AvailableRooms
		}
		if p.Image != nil {
			h.Image = *p.Image
		}
		s.hostels[i] = h
		return h, true
	}
	return model.Hostel{}, false
}

// DeleteHostel removes the hostel with the given id, if present. Rooms that
// reference it are left dangling; readers handle the missing join.
func (s *Store) DeleteHostel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, h := range s.hostels {
		if h.ID == id {
			s.hostels = append(s.hostels[:i], s.hostels[i+1:]...)
			return true
		}
	}
	return false
}
