package api

import (
	"github.com/SherClockHolmes/webpush-go"
	"github.com/patrickmn/go-cache"

	"github.com/ratheesh-12/HostelMS/internal/authz"
	"github.com/ratheesh-12/HostelMS/internal/notification"
	"github.com/ratheesh-12/HostelMS/internal/session"
	"github.com/ratheesh-12/HostelMS/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    *store.Store
	sessions *session.Store
	policy   *authz.Policy
	pool     *notification.WorkerPool
	webpush  *webpush.Options
	cache    *cache.Cache
}

// NewHandler creates a new API handler.
func NewHandler(s *store.Store, sessions *session.Store, policy *authz.Policy, pool *notification.WorkerPool, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:    s,
		sessions: sessions,
		policy:   policy,
		pool:     pool,
		webpush:  webpushOptions,
	}
}

// invalidate drops every cached GET response. Called after any mutation so
// cached reads never serve stale collections.
func (h *Handler) invalidate() {
	if h.cache != nil {
		h.cache.Flush()
	}
}

// dispatch queues a notification for web push delivery when a pool is
// configured.
func (h *Handler) dispatch(notificationID string) {
	if h.pool != nil {
		h.pool.Dispatch(notificationID)
	}
}
