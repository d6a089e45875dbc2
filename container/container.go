package container

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"go.uber.org/multierr"
)

// Container is the compiled, read-only result of a Builder.
type Container struct {
	parameters  map[string]any
	definitions map[string]Definition
	aliases     map[string]string
	overrides   map[string]string
	mappings    []EntityMapping
	factories   map[string]Factory
}

// CompileOption tunes Compile.
type CompileOption func(*compileOptions)

type compileOptions struct {
	registry *Registry
}

// WithRegistry resolves every override against registry during Compile.
// An override whose class has no factory fails compilation.
func WithRegistry(registry *Registry) CompileOption {
	return func(opts *compileOptions) {
		opts.registry = registry
	}
}

// Compile resolves placeholders, checks aliases, and binds overrides.
// All problems found are reported together.
func (b *Builder) Compile(opts ...CompileOption) (*Container, error) {
	var options compileOptions

	for _, apply := range opts {
		apply(&options)
	}

	res := newResolver(b.parameters)

	var errs error

	parameters := make(map[string]any, len(b.parameters))

	for _, name := range slices.Sorted(maps.Keys(b.parameters)) {
		value, err := res.parameter(name)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("parameter %q: %w", name, err))

			continue
		}

		parameters[name] = value
	}

	definitions := make(map[string]Definition, len(b.definitions))

	for _, id := range slices.Sorted(maps.Keys(b.definitions)) {
		definition, err := resolveDefinition(res, b.definitions[id])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("service %q: %w", id, err))

			continue
		}

		definitions[id] = definition
	}

	aliases := make(map[string]string, len(b.aliases))

	for _, alias := range slices.Sorted(maps.Keys(b.aliases)) {
		target, err := resolveAliasTarget(res, b.aliases[alias])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("alias %q: %w", alias, err))

			continue
		}

		aliases[alias] = target
	}

	for _, alias := range slices.Sorted(maps.Keys(aliases)) {
		final, err := resolveAlias(aliases, alias)
		if err != nil {
			errs = multierr.Append(errs, err)

			continue
		}

		if _, ok := definitions[final]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("alias %q: %w: %q", alias, ErrServiceNotFound, final))
		}
	}

	overrides := make(map[string]string, len(b.overrides))
	factories := make(map[string]Factory, len(b.overrides))

	for _, iface := range slices.Sorted(maps.Keys(b.overrides)) {
		class, err := resolveClass(res, b.overrides[iface])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("override %q: %w", iface, err))

			continue
		}

		overrides[iface] = class

		if options.registry == nil {
			continue
		}

		factory, ok := options.registry.Lookup(class)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("override %q: %w: %q", iface, ErrFactoryNotFound, class))

			continue
		}

		factories[iface] = factory
	}

	mappings := make([]EntityMapping, 0, len(b.mappings))

	for _, mapping := range b.mappings {
		class, err := resolveClass(res, mapping.Class)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("mapping %q: %w", mapping.Name, err))

			continue
		}

		mapping.Class = class
		mappings = append(mappings, mapping)
	}

	if errs != nil {
		return nil, errs
	}

	slog.Debug("container compiled",
		slog.Int("parameters", len(parameters)),
		slog.Int("services", len(definitions)),
		slog.Int("aliases", len(aliases)),
		slog.Int("overrides", len(overrides)),
		slog.Int("mappings", len(mappings)),
	)

	return &Container{
		parameters:  parameters,
		definitions: definitions,
		aliases:     aliases,
		overrides:   overrides,
		mappings:    mappings,
		factories:   factories,
	}, nil
}

func resolveDefinition(res *resolver, definition Definition) (Definition, error) {
	class, err := resolveClass(res, definition.Class)
	if err != nil {
		return Definition{}, err
	}

	resolved := definition
	resolved.Class = class
	resolved.Tags = slices.Clone(definition.Tags)

	if len(definition.Arguments) > 0 {
		arguments, err := res.value(definition.Arguments)
		if err != nil {
			return Definition{}, err
		}

		resolved.Arguments, _ = arguments.([]any)
	}

	return resolved, nil
}

func resolveClass(res *resolver, class string) (string, error) {
	value, err := res.string(class)
	if err != nil {
		return "", err
	}

	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidClass, class)
	}

	return text, nil
}

func resolveAliasTarget(res *resolver, target string) (string, error) {
	resolved, err := resolveClass(res, target)
	if err != nil {
		return "", err
	}

	return strings.TrimPrefix(resolved, "@"), nil
}

// Parameter returns the resolved value stored under name.
func (c *Container) Parameter(name string) (any, error) {
	value, ok := c.parameters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParameterNotFound, name)
	}

	return value, nil
}

// Parameters returns a copy of all resolved parameters.
func (c *Container) Parameters() map[string]any {
	return maps.Clone(c.parameters)
}

// Definition returns the service registered under id, following aliases.
func (c *Container) Definition(id string) (Definition, error) {
	final, err := resolveAlias(c.aliases, id)
	if err != nil {
		return Definition{}, err
	}

	definition, ok := c.definitions[final]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrServiceNotFound, id)
	}

	return definition, nil
}

// Definitions returns a copy of all service definitions.
func (c *Container) Definitions() map[string]Definition {
	return maps.Clone(c.definitions)
}

// Aliases returns a copy of the direct alias targets.
func (c *Container) Aliases() map[string]string {
	return maps.Clone(c.aliases)
}

// ResolveAlias follows the alias chain starting at id.
func (c *Container) ResolveAlias(id string) (string, error) {
	return resolveAlias(c.aliases, id)
}

// Overrides returns a copy of the interface to class bindings.
func (c *Container) Overrides() map[string]string {
	return maps.Clone(c.overrides)
}

// Mappings returns the entity mappings in registration order.
func (c *Container) Mappings() []EntityMapping {
	return slices.Clone(c.mappings)
}

// Factory returns the factory bound to iface during Compile.
func (c *Container) Factory(iface string) (Factory, error) {
	factory, ok := c.factories[iface]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFactoryNotFound, iface)
	}

	return factory, nil
}

// Make builds a new instance of the class bound to iface and asserts its type.
//
//nolint:ireturn // T is chosen by the caller
func Make[T any](c *Container, iface string) (T, error) {
	var zero T

	factory, err := c.Factory(iface)
	if err != nil {
		return zero, err
	}

	instance, err := factory()
	if err != nil {
		return zero, fmt.Errorf("building %q: %w", iface, err)
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q built %T", ErrTypeMismatch, iface, instance)
	}

	return typed, nil
}
