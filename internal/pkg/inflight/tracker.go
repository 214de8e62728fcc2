// Package inflight suppresses stale screen loads.
//
// Each key (typically "<operator>:<screen>") has at most one live request.
// Beginning a new request cancels the previous one and bumps the key's
// generation, so a slow response that finishes late can be recognised and
// dropped instead of overwriting a fresher result.
package inflight

import (
	"context"
	"errors"
	"sync"
)

// Token identifies one generation of a key.
type Token uint64

type slot struct {
	gen    Token
	cancel context.CancelFunc
}

// Tracker hands out generation tokens per key. The set of keys is bounded
// by operators times screens, so slots are kept for the process lifetime.
type Tracker struct {
	mu    sync.Mutex
	slots map[string]*slot
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{slots: make(map[string]*slot)}
}

// Begin starts a new generation for key. The returned context is cancelled
// when a newer Begin for the same key arrives, when parent is cancelled, or
// when done is called. done must always be called.
func (t *Tracker) Begin(parent context.Context, key string) (ctx context.Context, token Token, done func()) {
	ctx, cancel := context.WithCancel(parent)

	t.mu.Lock()
	s, ok := t.slots[key]
	if !ok {
		s = &slot{}
		t.slots[key] = s
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	s.cancel = cancel
	token = s.gen
	t.mu.Unlock()

	done = func() {
		cancel()
		t.mu.Lock()
		if s.gen == token {
			s.cancel = nil
		}
		t.mu.Unlock()
	}
	return ctx, token, done
}

// Current reports whether token is still the latest generation for key.
// A finished request stays current until a newer one begins.
func (t *Tracker) Current(key string, token Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.slots[key]
	return ok && s.gen == token
}

// InFlight returns the number of keys with a live request.
func (t *Tracker) InFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, s := range t.slots {
		if s.cancel != nil {
			n++
		}
	}
	return n
}

// ErrSuperseded is returned by Do when a newer request for the same key
// began before this one finished.
var ErrSuperseded = errors.New("request superseded")

// Do runs fn under a new generation of key. The result is returned only if
// no newer request for key has started in the meantime.
func Do[T any](parent context.Context, t *Tracker, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, token, done := t.Begin(parent, key)
	defer done()

	res, err := fn(ctx)
	if !t.Current(key, token) {
		var zero T
		return zero, ErrSuperseded
	}
	return res, err
}
