// Package keylock serializes work per (localization id, install root) pair.
package keylock

import (
	"context"
	"sync"

	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// Registry hands out one exclusive lock per key. Locks are created on first
// use and kept for the lifetime of the registry.
type Registry struct {
	locks sync.Map // domain.LockKey -> *semaphore.Weighted
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) lock(key domain.LockKey) *semaphore.Weighted {
	if l, ok := r.locks.Load(key); ok {
		return l.(*semaphore.Weighted)
	}
	l, _ := r.locks.LoadOrStore(key, semaphore.NewWeighted(1))
	return l.(*semaphore.Weighted)
}

// Acquire blocks until the lock for key is free or ctx is done. The returned
// release function must be called exactly once; extra calls are ignored.
func (r *Registry) Acquire(ctx context.Context, key domain.LockKey) (release func(), err error) {
	l := r.lock(key)
	if err := l.Acquire(ctx, 1); err != nil {
		return nil, domain.Classify(domain.ErrNetwork, zerr.With(zerr.With(
			zerr.Wrap(err, domain.ErrLockAcquireFailed.Error()),
			"id", key.LocalizationID), "root", key.InstallRoot))
	}

	var once sync.Once
	return func() { once.Do(func() { l.Release(1) }) }, nil
}

// With runs fn while holding the lock for key.
func (r *Registry) With(ctx context.Context, key domain.LockKey, fn func() error) error {
	release, err := r.Acquire(ctx, key)
	if err != nil {
		return err
	}
	defer release()
	return fn()
}

// Len reports how many keys have been seen.
func (r *Registry) Len() int {
	n := 0
	r.locks.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
