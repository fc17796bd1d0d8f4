package dispatchers

import (
	"iter"
	"slices"
	"sync"

	"github.com/quickrecipe/console/internal/usage"
)

// Registry is an ordered set of uniquely named actions.
// Registries are small and human-curated, so lookups scan.
type Registry struct {
	mu      sync.RWMutex
	actions []Action
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds an action. The registry keeps its own copy; later changes to
// the caller's value have no effect.
func (r *Registry) Register(action Action) error {
	if action.Name == "" {
		return usage.InvalidAction("empty name")
	}
	if action.Run == nil {
		return usage.InvalidAction(action.Name + " has no handler")
	}
	if action.Accepts == 0 {
		action.Accepts = AcceptsPositional
	}
	action.Params = slices.Clone(action.Params)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(action.Name) >= 0 {
		return usage.DuplicateName(action.Name)
	}
	r.actions = append(r.actions, action)
	return nil
}

// MustRegister is Register for startup wiring; it panics on error.
func (r *Registry) MustRegister(actions ...Action) {
	for _, a := range actions {
		if err := r.Register(a); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the named action. When absent it returns the sentinel
// action, whose name, description and usage are empty, and false.
func (r *Registry) Lookup(name string) (Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(name)
	if i < 0 || name == "" {
		return Action{}, false
	}
	return r.copyAt(i), true
}

// Remove deletes the named action.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 || name == "" {
		return usage.NotFound("action '" + name + "'")
	}
	r.actions = slices.Delete(r.actions, i, i+1)
	return nil
}

// All yields every action in registration order. The sequence reads a
// snapshot taken when iteration starts, so it can be restarted and never
// observes concurrent changes halfway.
func (r *Registry) All() iter.Seq[Action] {
	return func(yield func(Action) bool) {
		r.mu.RLock()
		snapshot := make([]Action, len(r.actions))
		for i := range r.actions {
			snapshot[i] = r.copyAt(i)
		}
		r.mu.RUnlock()

		for _, a := range snapshot {
			if !yield(a) {
				return
			}
		}
	}
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	var names []string
	for a := range r.All() {
		names = append(names, a.Name)
	}
	return names
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actions)
}

func (r *Registry) indexOf(name string) int {
	return slices.IndexFunc(r.actions, func(a Action) bool { return a.Name == name })
}

func (r *Registry) copyAt(i int) Action {
	a := r.actions[i]
	a.Params = slices.Clone(a.Params)
	return a
}
