// Package session holds the current authenticated identity for the
// dashboard. The model is deliberately single-slot: one identity at a time,
// overwritten on login, persisted so it survives restarts.
package session

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/ratheesh-12/HostelMS/internal/model"
)

// SlotKey is the fixed key the identity snapshot is stored under.
const SlotKey = "hostel-user"

// Slot is a durable key-value slot for the identity snapshot.
type Slot interface {
	Get(key string) (value string, ok bool, err error)
	Put(key, value string) error
	Delete(key string) error
}

// Store manages the current session identity.
type Store struct {
	mu       sync.RWMutex
	user     *model.User
	users    []model.User
	password string
	slot     Slot
}

// New creates a session store over the given mock identities and rehydrates
// any persisted identity from the slot. A persisted identity is trusted
// without re-validating credentials; a snapshot that fails to decode is
// discarded and the store starts unauthenticated.
func New(users []model.User, password string, slot Slot) *Store {
	s := &Store{users: users, password: password, slot: slot}

	raw, ok, err := slot.Get(SlotKey)
	if err != nil {
		log.Printf("session: failed to read persisted identity: %v", err)
		return s
	}
	if !ok {
		return s
	}

	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.Printf("session: discarding malformed persisted identity: %v", err)
		if err := slot.Delete(SlotKey); err != nil {
			log.Printf("session: failed to clear malformed slot: %v", err)
		}
		return s
	}

	s.user = &u
	return s
}

// Login validates the shared mock credential and looks up an identity by
// username and role. It reports false on any failure without distinguishing
// a bad password from an unknown user.
func (s *Store) Login(username, password string, role model.Role) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if password != s.password {
		log.Printf("Login error: invalid credentials for %q", username)
		return model.User{}, false
	}

	for _, u := range s.users {
		if u.Username == username && u.Role == role {
			stored := u
			s.user = &stored

			snapshot, err := json.Marshal(stored)
			if err != nil {
				log.Printf("session: failed to encode identity: %v", err)
			} else if err := s.slot.Put(SlotKey, string(snapshot)); err != nil {
				log.Printf("session: failed to persist identity: %v", err)
			}
			return stored, true
		}
	}

	log.Printf("Login error: user %q with role %q not found", username, role)
	return model.User{}, false
}

// Logout clears the current identity and removes the persisted snapshot.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.slot.Delete(SlotKey); err != nil {
		log.Printf("session: failed to remove persisted identity: %v", err)
	}
}

// Current returns the authenticated identity, if any.
func (s *Store) Current() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether an identity is present.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}
