package model

// Provider describes one backend in the registry: a display name, the
// ordered catalog of model identifiers it serves, and a constructor for an
// adapter bound to one of those identifiers.
type Provider struct {
	// Name is the provider display name persisted into transcripts.
	Name string
	// Models lists the identifiers this provider accepts, in declaration
	// order. Catalogs must not overlap between providers.
	Models []string
	// New constructs an adapter for an identifier from Models.
	New func(name string) (Model, error)
}

// Registry maps model identifiers to the provider that serves them.
// Resolution is an exact, case-sensitive match; the first provider whose
// catalog contains the identifier wins.
type Registry struct {
	providers []Provider
}

// NewRegistry builds a registry over the given providers. Declaration order
// is preserved for catalog listings and resolution precedence.
func NewRegistry(providers ...Provider) *Registry {
	return &Registry{providers: providers}
}

// Resolve constructs an adapter for the identifier, or fails with an
// UnsupportedModelError naming the identifier and every valid identifier
// across all providers.
func (r *Registry) Resolve(name string) (Model, error) {
	for _, p := range r.providers {
		for _, m := range p.Models {
			if m == name {
				return p.New(name)
			}
		}
	}
	return nil, &UnsupportedModelError{Name: name, Supported: r.Identifiers()}
}

// Catalog returns the registered providers in declaration order. The slice
// is a snapshot and safe for caller mutation.
func (r *Registry) Catalog() []Provider {
	out := make([]Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// Identifiers flattens all catalogs into one list, preserving provider
// declaration order and per-provider model order.
func (r *Registry) Identifiers() []string {
	var out []string
	for _, p := range r.providers {
		out = append(out, p.Models...)
	}
	return out
}
