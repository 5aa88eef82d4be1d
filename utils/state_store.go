package utils

import (
	"sync"
	"time"
)

// stateStore holds short-lived OAuth state tokens to defeat CSRF on the
// callback leg. In-memory is sufficient for a single-instance deployment.
var (
	states   = map[string]time.Time{}
	statesMu sync.Mutex
)

// SaveState remembers a state token for the given lifetime.
func SaveState(state string, ttl time.Duration) {
	statesMu.Lock()
	defer statesMu.Unlock()
	pruneStatesLocked()
	states[state] = time.Now().Add(ttl)
}

// ConsumeState validates and removes a state token. Returns false for
// unknown or expired tokens.
func ConsumeState(state string) bool {
	statesMu.Lock()
	defer statesMu.Unlock()
	expires, ok := states[state]
	if !ok {
		return false
	}
	delete(states, state)
	return time.Now().Before(expires)
}

func pruneStatesLocked() {
	now := time.Now()
	for s, exp := range states {
		if now.After(exp) {
			delete(states, s)
		}
	}
}
