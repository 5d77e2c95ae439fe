package store

import "github.com/ratheesh-12/HostelMS/internal/model"

// UserPatch carries the fields an update may overwrite. Role is immutable
// once created and deliberately absent here.
type UserPatch struct {
	Name   *string           `json:"name"`
	Email  *string           `json:"email"`
	Status *model.UserStatus `json:"status"`
	Avatar *string           `json:"avatar"`
}

// Users returns a copy of the users collection.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// User looks up a user by id.
func (s *Store) User(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// AddUser assigns a fresh numeric id and appends the user.
func (s *Store) AddUser(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = nextID("", &s.userSeq)
	s.users = append(s.users, u)
	return u
}

// UpdateUser shallow-merges the patch over the stored user.
func (s *Store) UpdateUser(id string, p UserPatch) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID != id {
			continue
		}
		if p.Name != nil {
			u.Name = *p.Name
		}
		if p.Email != nil {
			u.Email = *p.Email
		}
		if p.Status != nil {
			u.Status = *p.Status
		}
		if p.Avatar != nil {
			u.Avatar = *p.Avatar
		}
		s.users[i] = u
		return u, true
	}
	return model.User{}, false
}

// ToggleUserStatus flips a user between active and inactive.
func (s *Store) ToggleUserStatus(id string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID != id {
			continue
		}
		if u.Status == model.UserActive {
			u.Status = model.UserInactive
		} else {
			u.Status = model.UserActive
		}
		s.users[i] = u
		return u, true
	}
	return model.User{}, false
}

// DeleteUser removes the user with the given id, if present.
func (s *Store) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// Students returns a copy of the student roster.
func (s *Store) Students() []model.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Student, len(s.students))
	copy(out, s.students)
	return out
}

// AddStudent assigns a fresh id and appends the roster entry.
func (s *Store) AddStudent(st model.Student) model.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	st.ID = nextID("student", &s.studentSeq)
	s.students = append(s.students, st)
	return st
}
