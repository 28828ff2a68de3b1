// Package catalog keeps the set of documented builders, either the built-in
// ones or builders loaded from JSON/YAML data files.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-builderdocs/pkg/builders"
	"github.com/goliatone/go-builderdocs/pkg/content"
)

// Registry stores builder documentation by name. Entries are validated on
// registration and cloned on the way in and out, so the registry is safe for
// concurrent readers.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]content.BuilderData
	sources  map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]content.BuilderData),
		sources:  make(map[string]string),
	}
}

// Default returns a registry holding every built-in builder.
func Default() *Registry {
	reg := NewRegistry()
	for _, name := range builders.Names() {
		data, _ := builders.Lookup(name)
		reg.mustRegister(name, data, "builtin")
	}
	return reg
}

// Register validates and stores data under name. Duplicate names return an
// error.
func (r *Registry) Register(name string, data content.BuilderData) error {
	return r.register(name, data, "")
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, data content.BuilderData) {
	r.mustRegister(name, data, "")
}

func (r *Registry) mustRegister(name string, data content.BuilderData, source string) {
	if err := r.register(name, data, source); err != nil {
		panic(err)
	}
}

func (r *Registry) register(name string, data content.BuilderData, source string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("catalog: builder name is required")
	}
	if got := data.Name(); got != "" && got != trimmed {
		return fmt.Errorf("catalog: builder %q registered under name %q", got, trimmed)
	}
	if err := content.Validate(data); err != nil {
		return fmt.Errorf("catalog: register %q: %w", trimmed, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[trimmed]; exists {
		return fmt.Errorf("catalog: builder %q already registered", trimmed)
	}
	r.builders[trimmed] = data.Clone()
	r.sources[trimmed] = source
	return nil
}

// Get returns a copy of the builder documentation stored under name.
func (r *Registry) Get(name string) (content.BuilderData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.builders[name]
	if !ok {
		return content.BuilderData{}, fmt.Errorf("catalog: builder %q not found", name)
	}
	return data.Clone(), nil
}

// MustGet panics if the builder is missing.
func (r *Registry) MustGet(name string) content.BuilderData {
	data, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return data
}

// Source reports where a builder was loaded from: "builtin", a file path, or
// empty for programmatic registrations.
func (r *Registry) Source(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sources[name]
}

// List returns the sorted builder names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a builder is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.builders[name]
	return ok
}

// Len reports the number of registered builders.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.builders)
}

// Merge copies every builder from other into r. Name clashes are errors and
// leave r untouched.
func (r *Registry) Merge(other *Registry) error {
	if other == nil || other == r {
		return nil
	}

	other.mu.RLock()
	incoming := make(map[string]content.BuilderData, len(other.builders))
	sources := make(map[string]string, len(other.sources))
	for name, data := range other.builders {
		incoming[name] = data.Clone()
		sources[name] = other.sources[name]
	}
	other.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	for name := range incoming {
		if _, exists := r.builders[name]; exists {
			return fmt.Errorf("catalog: merge: builder %q already registered", name)
		}
	}
	for name, data := range incoming {
		r.builders[name] = data
		r.sources[name] = sources[name]
	}
	return nil
}
