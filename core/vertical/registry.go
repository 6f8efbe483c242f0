package vertical

import (
	"github.com/harleytans/reputigo-universal-calculator/core/determinism"
	"github.com/harleytans/reputigo-universal-calculator/internal/errors"
)

// Registry holds the evaluators keyed by vertical id.
// Safe for concurrent reads once populated.
type Registry struct {
	evaluators *determinism.StableMap[string, Evaluator]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		evaluators: determinism.NewStableMap[string, Evaluator](),
	}
}

// Register adds an evaluator. Registering the same id twice fails.
func (r *Registry) Register(e Evaluator) error {
	if e.ID() == "" {
		return errors.Newf(errors.TypeInput, "vertical has no id: %T", e)
	}
	if !r.evaluators.SetIfAbsent(e.ID(), e) {
		return errors.Newf(errors.TypeInput, "vertical already registered: %s", e.ID()).WithContext("vertical", e.ID())
	}
	return nil
}

// Get returns the evaluator for id
func (r *Registry) Get(id string) (Evaluator, bool) {
	return r.evaluators.Get(id)
}

// IDs returns all vertical ids in sorted order
func (r *Registry) IDs() []string {
	return r.evaluators.Keys()
}

// All returns every evaluator, ordered by id
func (r *Registry) All() []Evaluator {
	return r.evaluators.Values()
}

// Len returns the number of registered verticals
func (r *Registry) Len() int {
	return r.evaluators.Len()
}
