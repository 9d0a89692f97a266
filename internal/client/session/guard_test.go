package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func settledManager(t *testing.T, role string) *Manager {
	t.Helper()

	store := NewMemoryStorage()
	user := User{ID: uuid.NewString(), Name: "Test", Email: "t@example.com", Role: role}
	data, err := json.Marshal(user)
	require.NoError(t, err)
	require.NoError(t, store.Set("user_data", string(data)))
	require.NoError(t, store.Set("auth_token", fakeToken))

	m := NewManager("http://localhost:8080", store, zap.NewNop())
	require.Equal(t, StateAuthenticated, m.Hydrate())
	return m
}

func anonymousManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager("http://localhost:8080", NewMemoryStorage(), zap.NewNop())
	require.Equal(t, StateAnonymous, m.Hydrate())
	return m
}

func TestGuard_PublicAlwaysAllowed(t *testing.T) {
	guard := NewGuard(anonymousManager(t))

	decision := guard.Check(AccessPublic)
	assert.True(t, decision.Allow)
}

func TestGuard_AuthenticatedRoute(t *testing.T) {
	// Anonymous is sent to login
	guard := NewGuard(anonymousManager(t))
	decision := guard.Check(AccessAuthenticated)
	assert.False(t, decision.Allow)
	assert.Equal(t, "/login", decision.RedirectTo)

	// A signed-in user passes
	guard = NewGuard(settledManager(t, "user"))
	decision = guard.Check(AccessAuthenticated)
	assert.True(t, decision.Allow)
}

func TestGuard_AdminRoute(t *testing.T) {
	// A regular user is sent to the admin login, not granted access
	guard := NewGuard(settledManager(t, "user"))
	decision := guard.Check(AccessAdmin)
	assert.False(t, decision.Allow)
	assert.Equal(t, "/admin/login", decision.RedirectTo)

	// An admin passes
	guard = NewGuard(settledManager(t, "admin"))
	decision = guard.Check(AccessAdmin)
	assert.True(t, decision.Allow)

	// Anonymous is also sent to the admin login
	guard = NewGuard(anonymousManager(t))
	decision = guard.Check(AccessAdmin)
	assert.False(t, decision.Allow)
	assert.Equal(t, "/admin/login", decision.RedirectTo)
}

func TestWaitSettled_AlreadySettled(t *testing.T) {
	guard := NewGuard(settledManager(t, "user"))

	done := make(chan State, 1)
	go func() {
		done <- guard.WaitSettled(context.Background())
	}()

	select {
	case state := <-done:
		assert.Equal(t, StateAuthenticated, state)
	case <-time.After(time.Second):
		t.Fatal("WaitSettled should return immediately for a settled session")
	}
}

func TestWaitSettled_UnblocksWhenHydrateFinishes(t *testing.T) {
	m := NewManager("http://localhost:8080", NewMemoryStorage(), zap.NewNop())
	guard := NewGuard(m)

	done := make(chan State, 1)
	go func() {
		done <- guard.WaitSettled(context.Background())
	}()

	// Hydration finishes while the guard is waiting
	time.Sleep(20 * time.Millisecond)
	m.Hydrate()

	select {
	case state := <-done:
		assert.Equal(t, StateAnonymous, state)
	case <-time.After(2 * time.Second):
		t.Fatal("WaitSettled did not observe hydration")
	}
}

func TestWaitSettled_ContextCancelled(t *testing.T) {
	m := NewManager("http://localhost:8080", NewMemoryStorage(), zap.NewNop())
	guard := NewGuard(m)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan State, 1)
	go func() {
		done <- guard.WaitSettled(ctx)
	}()

	cancel()

	select {
	case state := <-done:
		// Hydration never ran, so the session is still loading
		assert.Equal(t, StateLoading, state)
	case <-time.After(2 * time.Second):
		t.Fatal("WaitSettled did not honor cancellation")
	}
}
