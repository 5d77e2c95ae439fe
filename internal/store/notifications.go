package store

import (
	"time"

	"github.com/ratheesh-12/HostelMS/internal/model"
)

// ActivityLogs returns a copy of the activity log. The log is seeded once
// and read-only; there is no append, update or delete.
func (s *Store) ActivityLogs() []model.ActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ActivityLog, len(s.activityLogs))
	copy(out, s.activityLogs)
	return out
}

// Notifications returns a copy of the notifications collection.
func (s *Store) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// NotificationsForUser returns the notifications targeting the given user.
func (s *Store) NotificationsForUser(userID string) []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// Notification looks up a notification by id.
func (s *Store) Notification(id string) (model.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notifications {
		if n.ID == id {
			return n, true
		}
	}
	return model.Notification{}, false
}

// AddNotification assigns a fresh id and timestamp and appends the
// notification. Used when bookings are decided and complaints answered.
func (s *Store) AddNotification(userID, message string, typ model.NotificationType) model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := model.Notification{
		ID:        nextID("n", &s.notifySeq),
		UserID:    userID,
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now().Format("2006-01-02T15:04:05"),
	}
	s.notifications = append(s.notifications, n)
	return n
}

// MarkNotificationRead flips the read flag to true. Idempotent: marking an
// already-read notification changes nothing.
func (s *Store) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications[i].Read = true
			return true
		}
	}
	return false
}

// UpsertSubscription stores a push subscription, replacing any previous
// subscription with the same endpoint.
func (s *Store) UpsertSubscription(sub model.PushSubscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.subscriptions {
		if existing.Endpoint == sub.Endpoint {
			s.subscriptions[i] = sub
			return
		}
	}
	s.subscriptions = append(s.subscriptions, sub)
}

// DeleteSubscription removes the subscription with the given endpoint.
func (s *Store) DeleteSubscription(endpoint string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subscriptions {
		if sub.Endpoint == endpoint {
			s.subscriptions = append(s.subscriptions[:i], s.subscriptions[i+1:]...)
			return true
		}
	}
	return false
}

// SubscriptionsForUser returns the push subscriptions registered by a user.
func (s *Store) SubscriptionsForUser(userID string) []model.PushSubscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.PushSubscription
	for _, sub := range s.subscriptions {
		if sub.UserID == userID {
			out = append(out, sub)
		}
	}
	return out
}
