package payment

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrProviderNotFound is returned by Resolve for an unregistered key.
// Callers branch on it with errors.Is.
var ErrProviderNotFound = errors.New("payment provider not found")

// Resolver is an immutable key→provider lookup table built once at
// startup. Lookup is a single map access with case-insensitive keys.
// Adding a provider means registering it here; resolver and service code
// never change.
type Resolver struct {
	providers map[string]Provider
}

// NewResolver collects the given providers into the lookup table.
// Keys are normalized to upper case; a duplicate key is a wiring bug and
// reported as an error.
func NewResolver(providers ...Provider) (*Resolver, error) {
	table := make(map[string]Provider, len(providers))
	for _, p := range providers {
		key := strings.ToUpper(p.Key())
		if _, exists := table[key]; exists {
			return nil, fmt.Errorf("duplicate provider key: %s", key)
		}
		table[key] = p
	}
	return &Resolver{providers: table}, nil
}

// Resolve returns the provider registered under key (case-insensitive).
// The not-found error enumerates all available keys.
func (r *Resolver) Resolve(key string) (Provider, error) {
	p, ok := r.providers[strings.ToUpper(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q, available: [%s]",
			ErrProviderNotFound, key, strings.Join(r.Keys(), ", "))
	}
	return p, nil
}

// Keys returns the sorted registered keys.
func (r *Resolver) Keys() []string {
	keys := make([]string, 0, len(r.providers))
	for k := range r.providers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ListAvailable returns all registered providers in key order.
func (r *Resolver) ListAvailable() []Provider {
	out := make([]Provider, 0, len(r.providers))
	for _, k := range r.Keys() {
		out = append(out, r.providers[k])
	}
	return out
}
