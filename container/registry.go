package container

import "fmt"

// Factory builds a new instance of a concrete class.
type Factory func() (any, error)

// Registry maps concrete class names to the factories that build them.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds factory under class.
func (r *Registry) Register(class string, factory Factory) error {
	if class == "" {
		return fmt.Errorf("class: %w", ErrEmptyID)
	}

	if factory == nil {
		return fmt.Errorf("%w: %q", ErrNilFactory, class)
	}

	if _, exists := r.factories[class]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateFactory, class)
	}

	r.factories[class] = factory

	return nil
}

// Lookup returns the factory registered under class.
func (r *Registry) Lookup(class string) (Factory, bool) {
	factory, ok := r.factories[class]

	return factory, ok
}

// RegisterConstructor registers a typed constructor that cannot fail.
func RegisterConstructor[T any](registry *Registry, class string, constructor func() T) error {
	if constructor == nil {
		return fmt.Errorf("%w: %q", ErrNilFactory, class)
	}

	return registry.Register(class, func() (any, error) {
		return constructor(), nil
	})
}
