package responder

// #region registry

// Registry is a named, ordered collection of responders. Built once at
// startup and read-only during query handling.
type Registry struct {
	byName map[string]Responder
	order  []string
}

// NewRegistry creates a registry from the given responders, preserving
// registration order for listing. Later registrations with a duplicate name
// replace earlier ones.
func NewRegistry(responders ...Responder) *Registry {
	r := &Registry{byName: make(map[string]Responder, len(responders))}
	for _, resp := range responders {
		if _, exists := r.byName[resp.Name()]; !exists {
			r.order = append(r.order, resp.Name())
		}
		r.byName[resp.Name()] = resp
	}
	return r
}

// Lookup resolves a responder by display name.
func (r *Registry) Lookup(name string) (Responder, bool) {
	resp, ok := r.byName[name]
	return resp, ok
}

// Names lists responder display names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered responders.
func (r *Registry) Len() int {
	return len(r.byName)
}

// #endregion
