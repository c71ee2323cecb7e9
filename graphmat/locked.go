package graphmat

import (
	"sync"

	"github.com/katalvlaran/graphmat/coord"
)

// Locked guards one GraphMat with a sync.RWMutex so it can be shared between
// goroutines. Lookups and scans take the read lock; writes, frees and the
// Update callback take the write lock.
type Locked[T any] struct {
	mu sync.RWMutex
	g  *GraphMat[T]
}

// NewLocked creates an empty store behind a lock.
func NewLocked[T any](opts ...Option) *Locked[T] {
	return &Locked[T]{g: New[T](opts...)}
}

// Get is GraphMat.Get under the read lock.
func (l *Locked[T]) Get(c coord.Coord) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.g.Get(c)
}

// Set is GraphMat.Set under the write lock.
func (l *Locked[T]) Set(c coord.Coord, v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.g.Set(c, v)
}

// FindIf is GraphMat.FindIf under the read lock. pred must not call back
// into l.
func (l *Locked[T]) FindIf(pred func(T) bool) (coord.Coord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.g.FindIf(pred)
}

// FreePos is GraphMat.FreePos under the write lock.
func (l *Locked[T]) FreePos(c coord.Coord) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.FreePos(c)
}

// FreeAll is GraphMat.FreeAll under the write lock.
func (l *Locked[T]) FreeAll(pred func(T) bool) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.FreeAll(pred)
}

// Reserve is GraphMat.Reserve under the write lock.
func (l *Locked[T]) Reserve(capacity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Reserve(capacity)
}

// Len is GraphMat.Len under the read lock.
func (l *Locked[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.g.Len()
}

// View runs fn with shared access; read-only iterators are fine here. fn must
// not mutate g, call GetMut, or keep g after returning.
func (l *Locked[T]) View(fn func(g *GraphMat[T])) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.g)
}

// Update runs fn with exclusive access, e.g. for GetMut or Set in a loop.
func (l *Locked[T]) Update(fn func(g *GraphMat[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.g)
}
