package container

import (
	"fmt"
	"maps"
	"slices"
)

// Definition describes a service registered in the container.
type Definition struct {
	Class     string   `json:"class"               yaml:"class"`
	Arguments []any    `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Tags      []string `json:"tags,omitempty"      yaml:"tags,omitempty"`
	Public    bool     `json:"public"              yaml:"public"`
}

// EntityMapping records the ORM mapping of an enabled entity.
type EntityMapping struct {
	Name        string `json:"name"         yaml:"name"`
	Class       string `json:"class"        yaml:"class"`
	MappingFile string `json:"mapping_file" yaml:"mapping_file"`
	Manager     string `json:"manager"      yaml:"manager"`
}

// Builder is the mutable registry extensions write to during boot.
type Builder struct {
	parameters  map[string]any
	definitions map[string]Definition
	aliases     map[string]string
	overrides   map[string]string
	mappings    []EntityMapping
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		parameters:  make(map[string]any),
		definitions: make(map[string]Definition),
		aliases:     make(map[string]string),
		overrides:   make(map[string]string),
		mappings:    nil,
	}
}

// SetParameter stores value under name, replacing any previous value.
func (b *Builder) SetParameter(name string, value any) {
	b.parameters[name] = value
}

// Parameter returns the raw, unresolved value stored under name.
func (b *Builder) Parameter(name string) (any, error) {
	value, ok := b.parameters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParameterNotFound, name)
	}

	return value, nil
}

// HasParameter reports whether name was set.
func (b *Builder) HasParameter(name string) bool {
	_, ok := b.parameters[name]

	return ok
}

// Parameters returns a copy of all raw parameters.
func (b *Builder) Parameters() map[string]any {
	return maps.Clone(b.parameters)
}

// SetDefinition registers a service. It replaces any alias with the same id.
func (b *Builder) SetDefinition(id string, definition Definition) error {
	if id == "" {
		return fmt.Errorf("service: %w", ErrEmptyID)
	}

	delete(b.aliases, id)

	b.definitions[id] = definition

	return nil
}

// Definition returns the service registered under id, without following aliases.
func (b *Builder) Definition(id string) (Definition, bool) {
	definition, ok := b.definitions[id]

	return definition, ok
}

// HasDefinition reports whether a service is registered under id.
func (b *Builder) HasDefinition(id string) bool {
	_, ok := b.definitions[id]

	return ok
}

// SetAlias makes alias resolve to target. It replaces any service or alias
// already registered under alias. The target does not have to exist yet;
// Compile checks it.
func (b *Builder) SetAlias(alias, target string) error {
	if alias == "" || target == "" {
		return fmt.Errorf("alias %q -> %q: %w", alias, target, ErrEmptyID)
	}

	if alias == target {
		return fmt.Errorf("%w: %q points to itself", ErrCircularAlias, alias)
	}

	delete(b.definitions, alias)

	b.aliases[alias] = target

	return nil
}

// Alias returns the direct target of alias.
func (b *Builder) Alias(alias string) (string, bool) {
	target, ok := b.aliases[alias]

	return target, ok
}

// ResolveAlias follows the alias chain starting at id and returns the final
// identifier. An id that is not an alias resolves to itself.
func (b *Builder) ResolveAlias(id string) (string, error) {
	return resolveAlias(b.aliases, id)
}

// SetOverride binds the interface identifier iface to class.
func (b *Builder) SetOverride(iface, class string) error {
	if iface == "" || class == "" {
		return fmt.Errorf("override %q -> %q: %w", iface, class, ErrEmptyID)
	}

	b.overrides[iface] = class

	return nil
}

// Overrides returns a copy of the interface to class bindings.
func (b *Builder) Overrides() map[string]string {
	return maps.Clone(b.overrides)
}

// AddMapping registers an entity mapping. A mapping with the same name
// replaces the earlier one in place.
func (b *Builder) AddMapping(mapping EntityMapping) error {
	if mapping.Name == "" {
		return fmt.Errorf("mapping: %w", ErrEmptyID)
	}

	idx := slices.IndexFunc(b.mappings, func(m EntityMapping) bool { return m.Name == mapping.Name })
	if idx >= 0 {
		b.mappings[idx] = mapping

		return nil
	}

	b.mappings = append(b.mappings, mapping)

	return nil
}

// Mappings returns the registered entity mappings in registration order.
func (b *Builder) Mappings() []EntityMapping {
	return slices.Clone(b.mappings)
}

func resolveAlias(aliases map[string]string, id string) (string, error) {
	seen := map[string]struct{}{id: {}}
	current := id

	for {
		target, ok := aliases[current]
		if !ok {
			return current, nil
		}

		if _, loop := seen[target]; loop {
			return "", fmt.Errorf("%w: %q", ErrCircularAlias, id)
		}

		seen[target] = struct{}{}
		current = target
	}
}
