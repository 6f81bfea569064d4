// Package guard implements the capability gate wrapping protected views:
// while the session store is still rehydrating, the guard stays pending and
// performs no navigation; once decided, unauthenticated access triggers a
// one-time redirect to the login view.
package guard

import (
	"context"
	"sync"

	"github.com/annakovaleva/blogview/internal/client/store"
)

type Decision int

const (
	// Pending means authentication status is not yet confirmed: persisted
	// state has not been read back. Deciding now would bounce an
	// already-logged-in user to login on a slow storage read.
	Pending Decision = iota
	Granted
	Denied
)

func (d Decision) String() string {
	switch d {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	default:
		return "pending"
	}
}

// Guard gates protected views on the session store. The redirect callback
// fires at most once, on the first denied resolution.
type Guard struct {
	sessions *store.SessionStore
	redirect func()
	once     sync.Once
}

func New(sessions *store.SessionStore, redirect func()) *Guard {
	return &Guard{sessions: sessions, redirect: redirect}
}

// Decision reports the current state without blocking.
func (g *Guard) Decision() Decision {
	select {
	case <-g.sessions.Rehydrated():
	default:
		return Pending
	}
	if g.sessions.Authenticated() {
		return Granted
	}
	return Denied
}

// Resolve waits for the rehydration signal and then decides. A denied
// resolution triggers the one-time redirect. The context bounds the wait;
// on cancellation the guard stays pending and no redirect happens.
func (g *Guard) Resolve(ctx context.Context) (Decision, error) {
	select {
	case <-ctx.Done():
		return Pending, ctx.Err()
	case <-g.sessions.Rehydrated():
	}

	if g.sessions.Authenticated() {
		return Granted, nil
	}

	if g.redirect != nil {
		g.once.Do(g.redirect)
	}
	return Denied, nil
}
