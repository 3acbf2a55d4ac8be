// Package workers bounds CPU-bound work, password hashing in particular,
// so that a burst of logins cannot starve the rest of the process.
package workers

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Pool runs functions with at most Size of them executing at once.
// The zero value is not usable; construct with NewPool.
type Pool struct {
	sem  *semaphore.Weighted
	size int64
}

// NewPool returns a pool admitting size concurrent tasks. A non-positive
// size falls back to runtime.NumCPU().
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}

	return &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: int64(size),
	}
}

// Size returns the maximum number of tasks run concurrently.
func (p *Pool) Size() int {
	return int(p.size)
}

// Do runs fn on the calling goroutine once a slot is free.
//
// If ctx is done before a slot frees up, fn is not run and the context error
// is returned. fn itself is never interrupted.
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for worker slot: %w", err)
	}
	defer p.sem.Release(1)

	return fn()
}
