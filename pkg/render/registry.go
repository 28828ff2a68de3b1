package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds renderers by name and by the file extension they write.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Renderer
	byExt  map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Renderer),
		byExt:  make(map[string]string),
	}
}

// Register adds a renderer under its Name(). Duplicate names are an error.
// The first renderer registered for an extension owns it.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := strings.TrimSpace(renderer.Name())
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.byName[name] = renderer

	ext := strings.ToLower(ExtensionFor(renderer))
	if _, taken := r.byExt[ext]; !taken {
		r.byExt[ext] = name
	}
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("render: renderer %q not found", name)
	}
	return renderer, nil
}

// ForExtension returns the name of the renderer writing files with ext
// (".md", "html", ...). ".yml" resolves like ".yaml".
func (r *Registry) ForExtension(ext string) (string, bool) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return "", false
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if ext == ".yml" {
		ext = ".yaml"
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.byExt[ext]
	return name, ok
}

// List returns the registered renderer names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a renderer is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byName[name]
	return ok
}
