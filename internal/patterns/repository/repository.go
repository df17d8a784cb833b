// Package repository demonstrates a generic in-memory repository plus a
// no-op unit of work. Other pattern packages reuse the store so demos
// share one persistence idiom.
package repository

import (
	"log/slog"
	"sync"

	"pattern_lab/internal/domain"
)

// Entity is anything storable by ID.
type Entity interface {
	Key() string
}

// Repository is a map-backed generic store guarded by an RWMutex.
type Repository[T Entity] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty repository for T.
func New[T Entity]() *Repository[T] {
	return &Repository[T]{items: make(map[string]T)}
}

// GetByID returns the stored entity or domain.ErrNotFound.
func (r *Repository[T]) GetByID(id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, domain.ErrNotFound
	}
	return item, nil
}

// GetAll returns every stored entity (unordered).
func (r *Repository[T]) GetAll() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out
}

// Add stores a new entity; replacing silently is allowed for demos.
func (r *Repository[T]) Add(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.Key()] = item
}

// Update replaces an existing entity or returns domain.ErrNotFound.
func (r *Repository[T]) Update(item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.Key()]; !ok {
		return domain.ErrNotFound
	}
	r.items[item.Key()] = item
	return nil
}

// Delete removes an entity or returns domain.ErrNotFound.
func (r *Repository[T]) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// Count returns the number of stored entities.
func (r *Repository[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// UnitOfWork is a no-op transaction boundary: with in-memory maps there
// is nothing to commit, but callers keep the transactional shape.
type UnitOfWork struct {
	active bool
}

func NewUnitOfWork() *UnitOfWork { return &UnitOfWork{} }

func (u *UnitOfWork) Begin() {
	u.active = true
	slog.Debug("unit of work begin")
}

func (u *UnitOfWork) Commit() {
	u.active = false
	slog.Debug("unit of work commit")
}

func (u *UnitOfWork) Rollback() {
	u.active = false
	slog.Debug("unit of work rollback")
}

// InTransaction reports whether Begin was called without Commit/Rollback.
func (u *UnitOfWork) InTransaction() bool { return u.active }

// StoredOrder adapts domain.Order to the Entity contract.
type StoredOrder struct {
	domain.Order
}

func (s StoredOrder) Key() string { return s.ID }

// StoredAccount adapts domain.Account to the Entity contract.
type StoredAccount struct {
	domain.Account
}

func (s StoredAccount) Key() string { return s.ID }
