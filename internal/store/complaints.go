package store

import "github.com/ratheesh-12/HostelMS/internal/model"

// ComplaintPatch carries the fields an update may overwrite.
type ComplaintPatch struct {
	Message          *string                `json:"message"`
	Category         *string                `json:"category"`
	Priority         *string                `json:"priority"`
	Response         *string                `json:"response"`
	Status           *model.ComplaintStatus `json:"status"`
	StaffID          *string                `json:"staffId"`
	StaffName        *string                `json:"staffName"`
	VerificationDate *string                `json:"verificationDate"`
}

// Complaints returns a copy of the complaints collection.
func (s *Store) Complaints() []model.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Complaint, len(s.complaints))
	copy(out, s.complaints)
	return out
}

// ComplaintsByStudent returns the complaints filed by the given student.
func (s *Store) ComplaintsByStudent(studentID string) []model.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Complaint
	for _, c := range s.complaints {
		if c.StudentID == studentID {
			out = append(out, c)
		}
	}
	return out
}

// Complaint looks up a complaint by id.
func (s *Store) Complaint(id string) (model.Complaint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.complaints {
		if c.ID == id {
			return c, true
		}
	}
	return model.Complaint{}, false
}

// AddComplaint assigns a fresh id and appends the complaint.
func (s *Store) AddComplaint(c model.Complaint) model.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = nextID("c", &s.complaintSeq)
	s.complaints = append(s.complaints, c)
	return c
}

// UpdateComplaint shallow-merges the patch over the stored complaint.
func (s *Store) UpdateComplaint(id string, p ComplaintPatch) (model.Complaint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.complaints {
		if c.ID != id {
			continue
		}
		if p.Message != nil {
			c.Message = *p.Message
		}
		if p.Category != nil {
			c.Category = *p.Category
		}
		if p.Priority != nil {
			c.Priority = *p.Priority
		}
		if p.Response != nil {
			c.Response = *p.Response
		}
		if p.Status != nil {
			c.Status = *p.Status
		}
		if p.StaffID != nil {
			c.StaffID = *p.StaffID
		}
		if p.StaffName != nil {
			c.StaffName = *p.StaffName
		}
		if p.VerificationDate != nil {
			c.VerificationDate = *p.VerificationDate
		}
		s.complaints[i] = c
		return c, true
	}
	return model.Complaint{}, false
}

// DeleteComplaint removes the complaint with the given id, if present.
func (s *Store) DeleteComplaint(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.complaints {
		if c.ID == id {
			s.complaints = append(s.complaints[:i], s.complaints[i+1:]...)
			return true
		}
	}
	return false
}
