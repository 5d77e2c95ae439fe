package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ratheesh-12/HostelMS/config"
	"github.com/ratheesh-12/HostelMS/internal/authz"
	"github.com/ratheesh-12/HostelMS/internal/session"
	"github.com/ratheesh-12/HostelMS/internal/store"
)

// memSlot is an in-memory session.Slot for handler tests.
type memSlot struct {
	m map[string]string
}

func newMemSlot() *memSlot { return &memSlot{m: make(map[string]string)} }

func (s *memSlot) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *memSlot) Put(key, value string) error {
	s.m[key] = value
	return nil
}

func (s *memSlot) Delete(key string) error {
	delete(s.m, key)
	return nil
}

// newTestRouter wires a full router over fresh stores. Rate limits are set
// high so tests never trip them.
func newTestRouter() (*gin.Engine, *store.Store, *session.Store) {
	gin.SetMode(gin.TestMode)

	s := store.New()
	sessions := session.New(store.SeedIdentities(), "password", newMemSlot())
	handler := NewHandler(s, sessions, authz.New(), nil, nil)

	cfg := &config.ServerConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTLSeconds: 60,
	}
	return NewRouter(handler, cfg), s, sessions
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, username, role string) {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/auth/login", gin.H{
		"username": username,
		"password": "password",
		"role":     role,
	})
	require.Equal(t, http.StatusOK, w.Code, "login as %s/%s failed: %s", username, role, w.Body.String())
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
