package store

import "github.com/ratheesh-12/HostelMS/internal/model"

// RoomPatch carries the fields an update may overwrite.
type RoomPatch struct {
	Number   *string           `json:"number"`
	Type     *string           `json:"type"`
	Status   *model.RoomStatus `json:"status"`
	Price    *int              `json:"price"`
	HostelID *string           `json:"hostelId"`
}

// Rooms returns a copy of the rooms collection.
func (s *Store) Rooms() []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// RoomsByHostel returns the rooms belonging to the given hostel.
func (s *Store) RoomsByHostel(hostelID string) []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Room
	for _, r := range s.rooms {
		if r.HostelID == hostelID {
			out = append(out, r)
		}
	}
	return out
}

// Room looks up a room by id.
func (s *Store) Room(id string) (model.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return model.Room{}, false
}

// AddRoom assigns a fresh id and appends the room.
func (s *Store) AddRoom(r model.Room) model.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = nextID("r", &s.roomSeq)
	s.rooms = append(s.rooms, r)
	return r
}

// UpdateRoom shallow-merges the patch over the stored room.
func (s *Store) UpdateRoom(id string, p RoomPatch) (model.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.rooms {
		if r.ID != id {
			continue
		}
		if p.Number != nil {
			r.Number = *p.Number
		}
		if p.Type != nil {
			r.Type = *p.Type
		}
		if p.Status != nil {
			r.Status = *p.Status
		}
		if p.Price != nil {
			r.Price = *p.Price
		}
		if p.HostelID != nil {
			r.HostelID = *p.HostelID
		}
		s.rooms[i] = r
		return r, true
	}
	return model.Room{}, false
}

// DeleteRoom removes the room with the given id, if present.
func (s *Store) DeleteRoom(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.rooms {
		if r.ID == id {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			return true
		}
	}
	return false
}
