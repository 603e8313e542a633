// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-post-mirror/internal/logger"
)

// Option configures a [Store].
type Option func(*Store)

// WithStaleGuard makes the store drop terminal events whose token is older
// than the latest token issued for the same identity.
func WithStaleGuard() Option {
	return func(s *Store) {
		s.staleGuard = true
	}
}

// WithLogger sets the logger used to trace applied and dropped events.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithInitialState replaces the empty initial state.
func WithInitialState(initial State) Option {
	return func(s *Store) {
		s.state = initial.Clone()
	}
}

// Store coordinates concurrent dispatches against one [State].
type Store struct {
	mu     sync.Mutex
	state  State
	latest map[string]uint64

	subMu       sync.RWMutex
	subscribers map[uint64]func(State)
	nextSubID   uint64

	tokens     atomic.Uint64
	staleGuard bool
	logger     *logger.Logger
}

// NewStore returns a store holding [Initial].
func NewStore(opts ...Option) *Store {
	s := &Store{
		state:       Initial(),
		latest:      make(map[string]uint64),
		subscribers: make(map[uint64]func(State)),
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextToken issues a new request token. Tokens increase monotonically for the
// lifetime of the store.
func (s *Store) NextToken() uint64 {
	return s.tokens.Add(1)
}

// Dispatch applies e and notifies subscribers with the resulting snapshot.
// It reports false when e was dropped by the stale guard.
//
// Subscribers run on the dispatching goroutine after the store lock is
// released and must not block.
func (s *Store) Dispatch(e Event) bool {
	s.mu.Lock()

	if e.Identity != "" {
		latest := s.latest[e.Identity]
		if e.Kind == KindOperation && e.Phase == PhasePending && e.Token > latest {
			s.latest[e.Identity] = e.Token
		}
		if s.staleGuard && e.IsTerminal() && e.Token < latest {
			s.mu.Unlock()
			s.logger.Debug().
				Str("op", e.Op.String()).
				Str("identity", e.Identity).
				Uint64("token", e.Token).
				Uint64("latest", latest).
				Msg("stale event dropped")
			return false
		}
	}

	revision := s.state.Revision + 1
	s.state = Reduce(s.state, e)
	s.state.Revision = revision
	snapshot := s.state.Clone()
	s.mu.Unlock()

	s.logger.Debug().
		Str("op", e.Op.String()).
		Str("phase", e.Phase.String()).
		Uint64("token", e.Token).
		Str("status", snapshot.Status.String()).
		Int("items", len(snapshot.Items)).
		Msg("event applied")

	s.notify(snapshot)
	return true
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// Subscribe registers fn to receive every state produced by Dispatch and
// returns a function that removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subscribers, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) notify(snapshot State) {
	s.subMu.RLock()
	subs := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.subMu.RUnlock()

	for _, fn := range subs {
		fn(snapshot.Clone())
	}
}
