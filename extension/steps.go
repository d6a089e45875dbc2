package extension

import (
	"fmt"
	"log/slog"
	"maps"
	"path"
	"slices"

	"github.com/0xalexb/hjarta-comment/container"
)

// Step is one configuration-processing stage run against a validated config.
type Step[C any] func(cfg *C, builder *container.Builder) error

// Pipeline returns the ordered steps run for ext once its config is validated.
func Pipeline[C any](ext Extension[C]) []Step[C] {
	return []Step[C]{
		ParametersStep(ext),
		ConfigFilesStep(ext),
		MappingsStep[C](ext),
		OverridesStep[C](ext),
		ext.PostLoad,
	}
}

// Run executes steps in order and stops at the first error.
func Run[C any](cfg *C, builder *container.Builder, steps ...Step[C]) error {
	for idx, step := range steps {
		err := step(cfg, builder)
		if err != nil {
			return fmt.Errorf("step %d: %w", idx+1, err)
		}
	}

	return nil
}

// ParametersStep stores the flattened config values as parameters.
func ParametersStep[C any](ext Extension[C]) Step[C] {
	return func(cfg *C, builder *container.Builder) error {
		values := ext.ParametrizationValues(cfg)

		for _, name := range slices.Sorted(maps.Keys(values)) {
			builder.SetParameter(name, values[name])
		}

		slog.Debug("parameters set", slog.String("extension", ext.Alias()), slog.Int("count", len(values)))

		return nil
	}
}

// ConfigFilesStep loads every declared config file, in order, from the
// extension's resources.
func ConfigFilesStep[C any](ext Extension[C]) Step[C] {
	return func(cfg *C, builder *container.Builder) error {
		location := ext.ConfigFilesLocation()
		resources := ext.Resources()

		for _, name := range ext.ConfigFiles(cfg) {
			err := LoadResource(resources, path.Join(location, name+ResourceExtension), builder)
			if err != nil {
				return fmt.Errorf("config file %q: %w", name, err)
			}
		}

		return nil
	}
}

// MappingsStep registers the entity mappings of enabled entities. It is a
// no-op unless ext implements MappingsProvider.
func MappingsStep[C any](ext any) Step[C] {
	return func(_ *C, builder *container.Builder) error {
		provider, ok := ext.(MappingsProvider)
		if !ok {
			return nil
		}

		for _, prefix := range provider.EntityMappings() {
			enabled, err := boolParameter(builder, prefix+".enabled")
			if err != nil {
				return err
			}

			if !enabled {
				slog.Debug("entity mapping disabled", slog.String("entity", prefix))

				continue
			}

			mapping := container.EntityMapping{Name: prefix}

			for suffix, field := range map[string]*string{
				".class":        &mapping.Class,
				".mapping_file": &mapping.MappingFile,
				".manager":      &mapping.Manager,
			} {
				*field, err = stringParameter(builder, prefix+suffix)
				if err != nil {
					return err
				}
			}

			err = builder.AddMapping(mapping)
			if err != nil {
				return err
			}
		}

		return nil
	}
}

// OverridesStep binds every overridable interface to the class held by its
// parameter. It is a no-op unless ext implements EntitiesOverridable.
func OverridesStep[C any](ext any) Step[C] {
	return func(_ *C, builder *container.Builder) error {
		overridable, ok := ext.(EntitiesOverridable)
		if !ok {
			return nil
		}

		overrides := overridable.EntitiesOverrides()

		for _, iface := range slices.Sorted(maps.Keys(overrides)) {
			class, err := stringParameter(builder, overrides[iface])
			if err != nil {
				return fmt.Errorf("override %q: %w", iface, err)
			}

			err = builder.SetOverride(iface, class)
			if err != nil {
				return err
			}
		}

		return nil
	}
}

func stringParameter(builder *container.Builder, name string) (string, error) {
	value, err := resolvedParameter(builder, name)
	if err != nil {
		return "", err
	}

	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is %T, want string", ErrInvalidParameterType, name, value)
	}

	return text, nil
}

func boolParameter(builder *container.Builder, name string) (bool, error) {
	value, err := resolvedParameter(builder, name)
	if err != nil {
		return false, err
	}

	flag, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q is %T, want bool", ErrInvalidParameterType, name, value)
	}

	return flag, nil
}

func resolvedParameter(builder *container.Builder, name string) (any, error) {
	raw, err := builder.Parameter(name)
	if err != nil {
		return nil, err
	}

	value, err := builder.ResolveValue(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", name, err)
	}

	return value, nil
}
