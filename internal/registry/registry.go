package registry

import (
	"fmt"

	"github.com/qgridlab/qcostgo/internal/config"
	"github.com/qgridlab/qcostgo/internal/query"
)

// Builder turns one model block (its domains and parameter overrides) into a
// leaf query. Builders validate their own attributes and fail with
// schema-class errors on malformed blocks.
type Builder func(block *config.ModelBlock) (*query.Query, error)

// Module is the interface cost-model packages implement to plug their
// builders into an application instance.
type Module interface {
	Register(r *Registry)
}

// Registry holds the model builders for a single application instance.
type Registry struct {
	builders map[string]Builder
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// RegisterModel registers a builder under a model type name. Registering the
// same type twice is a programmer error and panics.
func (r *Registry) RegisterModel(typeName string, b Builder) {
	if _, dup := r.builders[typeName]; dup {
		panic(fmt.Sprintf("registry: model type %q registered twice", typeName))
	}
	r.builders[typeName] = b
}

// ModelTypes reports how many model types are registered.
func (r *Registry) ModelTypes() int { return len(r.builders) }

func (r *Registry) builder(typeName string) (Builder, error) {
	b, ok := r.builders[typeName]
	if !ok {
		return nil, fmt.Errorf("unknown model type %q", typeName)
	}
	return b, nil
}
