package solver

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages the available solvers by name.
type Registry struct {
	solvers map[string]Solver
	mu      sync.RWMutex
}

// NewRegistry returns a registry holding the given solvers.
// It fails on a duplicate name.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[string]Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds s under s.Name().
func (r *Registry) Register(s Solver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.Name()
	if _, exists := r.solvers[name]; exists {
		return fmt.Errorf("solver %q is already registered", name)
	}
	r.solvers[name] = s

	return nil
}

// Get retrieves a solver by name.
func (r *Registry) Get(name string) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.solvers[name]
	if !exists {
		return nil, fmt.Errorf("solver %q not found in registry", name)
	}

	return s, nil
}

// List returns all registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.solvers))
	for name := range r.solvers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Select returns the solvers for names in the given order; an empty list
// selects every registered solver in List order.
func (r *Registry) Select(names ...string) ([]Solver, error) {
	if len(names) == 0 {
		names = r.List()
	}
	out := make([]Solver, 0, len(names))
	for _, name := range names {
		s, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}
