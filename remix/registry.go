package remix

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps names to programs. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	programs map[string]Program
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{programs: make(map[string]Program)}
}

// Default holds the built-in programs.
var Default = NewRegistry()

func init() {
	for _, p := range Builtins() {
		Default.MustRegister(p)
	}
}

// Register adds p under p.Name().
func (r *Registry) Register(p Program) error {
	if p == nil {
		return ErrNilProgram
	}

	name := p.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.programs[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateProgram, name)
	}

	r.programs[name] = p

	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(p Program) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Lookup returns the program registered under name.
func (r *Registry) Lookup(name string) (Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.programs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProgram, name)
	}

	return p, nil
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.programs))
	for name := range r.programs {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
