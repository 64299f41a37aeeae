package schema

import (
	"fmt"
	"sort"

	"github.com/puzpuzpuz/xsync/v3"
)

// Registry maps schema names to compiled schemas so that record types can be
// referenced by name, for example from ParseType or from command-line tools.
// Registry is safe for concurrent use.
type Registry struct {
	schemas *xsync.MapOf[string, *Schema]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: xsync.NewMapOf[string, *Schema]()}
}

// Register adds schemas under their names. Registering a different schema
// under a name already in use is an error.
func (r *Registry) Register(schemas ...*Schema) error {
	for _, s := range schemas {
		if s == nil {
			return fmt.Errorf("%w: nil schema", ErrInvalidSchema)
		}
		prev, loaded := r.schemas.LoadOrStore(s.Name(), s)
		if loaded && prev != s {
			return fmt.Errorf("%w: schema %q already registered", ErrInvalidSchema, s.Name())
		}
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(schemas ...*Schema) *Registry {
	if err := r.Register(schemas...); err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (*Schema, bool) {
	return r.schemas.Load(name)
}

// Names lists the registered schema names in sorted order.
func (r *Registry) Names() []string {
	var names []string
	r.schemas.Range(func(name string, _ *Schema) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}
