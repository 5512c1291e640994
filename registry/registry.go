/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/querywatch/diag"
	"github.com/suparena/querywatch/store"
	"github.com/suparena/querywatch/store/memory"
)

// DefaultName is the store name used when a consumer does not pick one.
const DefaultName = "default"

// Registry holds store handles keyed by record type and name. Stores are
// shared, process-wide and owned by whoever registered them; the registry
// only hands out handles.
type Registry struct {
	mu        sync.RWMutex
	stores    map[reflect.Type]map[string]any
	fallbacks map[reflect.Type]map[string]any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		stores:    make(map[reflect.Type]map[string]any),
		fallbacks: make(map[reflect.Type]map[string]any),
	}
}

// defaultRegistry is the process-wide registry used by the package-level
// functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register adds a store for record type T under the given name.
func Register[T any](r *Registry, name string, s store.Store[T]) error {
	t := typeOf[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	byName, ok := r.stores[t]
	if !ok {
		byName = make(map[string]any)
		r.stores[t] = byName
	}
	if _, exists := byName[name]; exists {
		return fmt.Errorf("store %q for type %s already registered", name, t)
	}
	byName[name] = s
	return nil
}

// Resolve returns the store registered for record type T under the given
// name. When none is registered it reports a developer-facing diagnostic and
// falls back to an empty in-memory store, so that an unconfigured consumer
// observes empty results instead of crashing. The fallback is cached: every
// resolve of the same (type, name) pair sees the same handle.
func Resolve[T any](r *Registry, name string) store.Store[T] {
	t := typeOf[T]()

	r.mu.RLock()
	if byName, ok := r.stores[t]; ok {
		if s, ok := byName[name]; ok {
			r.mu.RUnlock()
			return s.(store.Store[T])
		}
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock.
	if byName, ok := r.stores[t]; ok {
		if s, ok := byName[name]; ok {
			return s.(store.Store[T])
		}
	}

	byName, ok := r.fallbacks[t]
	if !ok {
		byName = make(map[string]any)
		r.fallbacks[t] = byName
	}
	if s, ok := byName[name]; ok {
		return s.(store.Store[T])
	}

	diag.ReportIssue("no store registered, falling back to an empty in-memory store",
		"type", t.String(), "name", name)
	s := memory.New[T]()
	byName[name] = s
	return s
}

// Remove deletes a registered store by name.
func Remove[T any](r *Registry, name string) error {
	t := typeOf[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	byName, ok := r.stores[t]
	if !ok {
		return fmt.Errorf("store %q for type %s not found", name, t)
	}
	if _, exists := byName[name]; !exists {
		return fmt.Errorf("store %q for type %s not found", name, t)
	}
	delete(byName, name)
	return nil
}

// List returns the names of all stores registered for record type T.
func List[T any](r *Registry) []string {
	t := typeOf[T]()

	r.mu.RLock()
	defer r.mu.RUnlock()

	byName := r.stores[t]
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	return names
}

// Reset drops all registered stores and cached fallbacks. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores = make(map[reflect.Type]map[string]any)
	r.fallbacks = make(map[reflect.Type]map[string]any)
}
