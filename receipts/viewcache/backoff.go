package viewcache

import (
	"sync"
	"time"
)

// Cooldown is how long thumbnail signing is suppressed for an identifier
// after an authorization failure.
const Cooldown = 30 * time.Second

// BackoffGuard suppresses repeated signed-URL attempts for a receipt after
// the signing endpoint rejected the credentials. A mis-scoped permission or
// expired token should not be hammered on every render, but transient
// network or upstream errors are not penalized and retry immediately.
type BackoffGuard struct {
	mu    sync.Mutex
	until map[string]time.Time

	now func() time.Time
}

// NewBackoffGuard creates an empty guard.
func NewBackoffGuard() *BackoffGuard {
	return &BackoffGuard{
		until: make(map[string]time.Time),
		now:   time.Now,
	}
}

// Proceed reports whether a signing attempt for the identifier may go
// upstream. Expired records are dropped on the way through; a record still
// in its cooldown window short-circuits the attempt.
func (g *BackoffGuard) Proceed(id string) bool {
	key := CanonicalKey(id)

	g.mu.Lock()
	defer g.mu.Unlock()

	until, ok := g.until[key]
	if !ok {
		return true
	}
	if g.now().Before(until) {
		return false
	}
	delete(g.until, key)
	return true
}

// Arm starts the cooldown window for the identifier. Call only after an
// authorization failure (401/403-class) from the signing endpoint.
func (g *BackoffGuard) Arm(id string) {
	key := CanonicalKey(id)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.until[key] = g.now().Add(Cooldown)
}
