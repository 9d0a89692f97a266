package session

import (
	"context"
	"time"
)

// settleFailsafe bounds how long a guard waits for hydration before
// treating the session as anonymous. Without it a stalled hydration would
// leave the user on a blank page forever.
const settleFailsafe = 10 * time.Second

// Access is the guard's requirement for a route.
type Access int

const (
	AccessPublic Access = iota
	AccessAuthenticated
	AccessAdmin
)

// Decision is what the guard tells the caller to do.
type Decision struct {
	Allow bool
	// RedirectTo is the login route to send the user to when denied.
	RedirectTo string
}

// Guard decides whether the current session may enter a route.
type Guard struct {
	manager *Manager
}

func NewGuard(manager *Manager) *Guard {
	return &Guard{manager: manager}
}

// Check resolves an access decision for a settled session. A loading
// session never produces a decision here; call WaitSettled first.
func (g *Guard) Check(access Access) Decision {
	state := g.manager.State()

	switch access {
	case AccessPublic:
		return Decision{Allow: true}

	case AccessAuthenticated:
		if state == StateAuthenticated {
			return Decision{Allow: true}
		}
		return Decision{RedirectTo: "/login"}

	case AccessAdmin:
		user := g.manager.CurrentUser()
		if state == StateAuthenticated && user != nil && user.IsAdmin() {
			return Decision{Allow: true}
		}
		return Decision{RedirectTo: "/admin/login"}

	default:
		return Decision{RedirectTo: "/login"}
	}
}

// WaitSettled blocks until the session leaves StateLoading, the context is
// cancelled, or the failsafe expires. On timeout the session is forced
// anonymous so the guard always reaches a decision.
func (g *Guard) WaitSettled(ctx context.Context) State {
	deadline := time.NewTimer(settleFailsafe)
	defer deadline.Stop()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if state := g.manager.State(); state != StateLoading {
			return state
		}

		select {
		case <-ctx.Done():
			return g.manager.State()
		case <-deadline.C:
			g.manager.becomeAnonymous()
			return StateAnonymous
		case <-ticker.C:
		}
	}
}
