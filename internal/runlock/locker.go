// Package runlock keeps matching passes from overlapping.
package runlock

import (
	"context"
	"errors"
	"sync"
)

// ErrHeld is returned by TryAcquire when another holder owns the lock
var ErrHeld = errors.New("run lock is held")

// Locker grants exclusive ownership of a named run
type Locker interface {
	// TryAcquire returns a release func on success and ErrHeld if the name is taken.
	TryAcquire(ctx context.Context, name string) (release func(), err error)
}

// LocalLocker serializes runs inside one process
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLocalLocker creates an in-process locker
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]struct{})}
}

// TryAcquire implements Locker
func (l *LocalLocker) TryAcquire(_ context.Context, name string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[name]; ok {
		return nil, ErrHeld
	}
	l.held[name] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, name)
			l.mu.Unlock()
		})
	}, nil
}
