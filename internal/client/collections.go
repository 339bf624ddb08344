package client

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

var ErrCollectionNotFound = errors.New("collection not found")

const (
	CollectionUsers  = "users"
	CollectionEvents = "events"
)

// Deleter removes one record of a collection by id.
type Deleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type DeleterFunc func(ctx context.Context, id uuid.UUID) error

func (f DeleterFunc) Delete(ctx context.Context, id uuid.UUID) error {
	return f(ctx, id)
}

// Registry maps collection names to their deleters. It is safe for
// concurrent use.
type Registry struct {
	mu          sync.RWMutex
	collections map[string]Deleter
}

func NewRegistry() *Registry {
	return &Registry{collections: make(map[string]Deleter)}
}

// Register adds or replaces the collection called name.
func (r *Registry) Register(name string, d Deleter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.collections[name] = d
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.collections))
	for name := range r.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Delete removes id from the named collection.
func (r *Registry) Delete(ctx context.Context, name string, id uuid.UUID) error {
	r.mu.RLock()
	d, ok := r.collections[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrCollectionNotFound, name)
	}

	return d.Delete(ctx, id)
}

// Collections returns a registry with the collections served by c.
func (c *Client) Collections() *Registry {
	r := NewRegistry()
	r.Register(CollectionUsers, DeleterFunc(c.DeleteUser))
	r.Register(CollectionEvents, DeleterFunc(c.DeleteEvent))
	return r
}
