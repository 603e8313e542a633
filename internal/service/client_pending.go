// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
)

// Pending is the handle of one coordinated operation.
type Pending[T any] struct {
	token uint64
	done  chan struct{}
	once  sync.Once

	value T
	err   error
}

func newPending[T any](token uint64) *Pending[T] {
	return &Pending[T]{token: token, done: make(chan struct{})}
}

// Token returns the request token issued for the invocation.
func (p *Pending[T]) Token() uint64 {
	return p.token
}

// Done is closed once the operation has settled and its terminal event has
// been applied to the store.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the operation settles or ctx is done. A rejected operation
// returns a *[RejectionError].
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (p *Pending[T]) settle(value T, err error) {
	p.once.Do(func() {
		p.value = value
		p.err = err
		close(p.done)
	})
}
