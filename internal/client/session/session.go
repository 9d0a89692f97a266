// Package session is the client-side counterpart of the auth API: it keeps
// the signed token and the cached user snapshot, exposes an explicit
// loading/authenticated/anonymous state machine, and never treats the
// cached snapshot as proof of identity - the server re-verifies the token
// on every request.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type State int

const (
	// StateLoading means hydration has not finished; callers must not
	// treat it as either signed-in or signed-out.
	StateLoading State = iota
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

const (
	userDataKey  = "user_data"
	authTokenKey = "auth_token"
)

// User is the cached profile snapshot. It drives presentation only.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == "admin"
}

// Manager owns the client session lifecycle.
type Manager struct {
	baseURL string
	store   Storage
	client  *http.Client
	log     *zap.Logger

	mu    sync.RWMutex
	state State
	user  *User
	token string
}

func NewManager(baseURL string, store Storage, log *zap.Logger) *Manager {
	return &Manager{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		client:  &http.Client{Timeout: 15 * time.Second},
		log:     log,
		state:   StateLoading,
	}
}

// State returns the current state; StateLoading until Hydrate has run.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// CurrentUser returns the cached snapshot, nil unless authenticated.
func (m *Manager) CurrentUser() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateAuthenticated || m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Token returns the raw bearer token, empty unless authenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateAuthenticated {
		return ""
	}
	return m.token
}

// Hydrate restores the session from storage. Malformed leftovers are
// cleared rather than trusted: the user snapshot must parse with a UUID id
// and the token must look like a signed token (three dot-separated
// segments). The state always leaves StateLoading, even on storage errors.
func (m *Manager) Hydrate() State {
	userData, okUser := m.store.Get(userDataKey)
	token, okToken := m.store.Get(authTokenKey)

	if !okUser || !okToken {
		m.becomeAnonymous()
		return StateAnonymous
	}

	var user User
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		m.log.Warn("Stored session is malformed, clearing", zap.Error(err))
		m.becomeAnonymous()
		return StateAnonymous
	}

	if _, err := uuid.Parse(user.ID); err != nil {
		m.log.Warn("Stored session has malformed user ID, clearing",
			zap.String("user_id", user.ID))
		m.becomeAnonymous()
		return StateAnonymous
	}

	if len(strings.Split(token, ".")) != 3 {
		m.log.Warn("Stored token is malformed, clearing")
		m.becomeAnonymous()
		return StateAnonymous
	}

	m.mu.Lock()
	m.user = &user
	m.token = token
	m.state = StateAuthenticated
	m.mu.Unlock()

	return StateAuthenticated
}

// Login authenticates against the API and persists the session.
func (m *Manager) Login(ctx context.Context, email, password string) (*User, error) {
	return m.authenticate(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Register creates an account; the API signs the caller in immediately.
func (m *Manager) Register(ctx context.Context, name, email, password string) (*User, error) {
	return m.authenticate(ctx, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
}

// Logout clears local state first so the user is signed out even when the
// server call fails; the cookie-clearing request is best effort.
func (m *Manager) Logout(ctx context.Context) {
	m.becomeAnonymous()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/api/auth/logout", nil)
	if err != nil {
		return
	}
	resp, err := m.client.Do(req)
	if err != nil {
		m.log.Warn("Logout request failed", zap.Error(err))
		return
	}
	resp.Body.Close()
}

// UpdateUser refreshes the cached snapshot after a profile change.
func (m *Manager) UpdateUser(user User) error {
	if _, err := uuid.Parse(user.ID); err != nil {
		return fmt.Errorf("malformed user ID")
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := m.store.Set(userDataKey, string(data)); err != nil {
		return err
	}

	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
	return nil
}

// ==================== HELPER METHODS ====================

// envelope matches the API's response wrapper.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authPayload struct {
	User      User      `json:"data"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (m *Manager) authenticate(ctx context.Context, path string, body map[string]string) (*User, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("malformed auth response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s", env.Message)
	}

	var auth authPayload
	if err := json.Unmarshal(env.Data, &auth); err != nil {
		return nil, fmt.Errorf("malformed auth response: %w", err)
	}

	userData, err := json.Marshal(auth.User)
	if err != nil {
		return nil, err
	}
	if err := m.store.Set(userDataKey, string(userData)); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	if err := m.store.Set(authTokenKey, auth.Token); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	m.mu.Lock()
	m.user = &auth.User
	m.token = auth.Token
	m.state = StateAuthenticated
	m.mu.Unlock()

	// Mirror the session into cookies for server-rendered pages;
	// best effort, the session works without it.
	m.syncCookies(ctx, auth.Token, string(userData))

	return &auth.User, nil
}

func (m *Manager) syncCookies(ctx context.Context, token, userData string) {
	payload, err := json.Marshal(map[string]string{
		"token":     token,
		"user_data": userData,
	})
	if err != nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		m.baseURL+"/api/auth/set-cookies", bytes.NewReader(payload))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		m.log.Warn("Cookie sync failed", zap.Error(err))
		return
	}
	resp.Body.Close()
}

func (m *Manager) becomeAnonymous() {
	m.store.Delete(userDataKey)
	m.store.Delete(authTokenKey)

	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.state = StateAnonymous
	m.mu.Unlock()
}
