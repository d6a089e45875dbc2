package extension

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-comment/config"
	"github.com/0xalexb/hjarta-comment/container"
)

// Binding is an extension with its config type erased.
type Binding struct {
	alias string
	load  func(config.Parser, config.DataFetcher, *container.Builder) error
}

// Bind wraps ext so it can be registered next to extensions with other config types.
func Bind[C any](ext Extension[C]) Binding {
	return Binding{
		alias: ext.Alias(),
		load: func(parser config.Parser, fetcher config.DataFetcher, builder *container.Builder) error {
			return Load(ext, parser, fetcher, builder)
		},
	}
}

// Alias returns the alias of the bound extension.
func (b Binding) Alias() string {
	return b.alias
}

// Load loads the bound extension into builder.
func (b Binding) Load(parser config.Parser, fetcher config.DataFetcher, builder *container.Builder) error {
	return b.load(parser, fetcher, builder)
}

// Kernel boots a set of extensions into a container.
type Kernel struct {
	bindings []Binding
}

// NewKernel registers bindings in the order they will load.
func NewKernel(bindings ...Binding) (*Kernel, error) {
	seen := make(map[string]struct{}, len(bindings))

	for _, binding := range bindings {
		if binding.alias == "" || binding.load == nil {
			return nil, ErrEmptyAlias
		}

		if _, exists := seen[binding.alias]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateExtension, binding.alias)
		}

		seen[binding.alias] = struct{}{}
	}

	return &Kernel{bindings: bindings}, nil
}

// Aliases returns the registered extension aliases in load order.
func (k *Kernel) Aliases() []string {
	aliases := make([]string, 0, len(k.bindings))

	for _, binding := range k.bindings {
		aliases = append(aliases, binding.alias)
	}

	return aliases
}

// Load runs every extension against a new builder and returns it uncompiled.
func (k *Kernel) Load(parser config.Parser, fetcher config.DataFetcher) (*container.Builder, error) {
	builder := container.NewBuilder()

	for _, binding := range k.bindings {
		err := binding.Load(parser, fetcher, builder)
		if err != nil {
			return nil, err
		}
	}

	return builder, nil
}

// Boot loads every extension and compiles the container.
func (k *Kernel) Boot(parser config.Parser, fetcher config.DataFetcher, opts ...container.CompileOption) (*container.Container, error) {
	builder, err := k.Load(parser, fetcher)
	if err != nil {
		return nil, err
	}

	compiled, err := builder.Compile(opts...)
	if err != nil {
		return nil, fmt.Errorf("compiling container: %w", err)
	}

	slog.Info("container booted", slog.Any("extensions", k.Aliases()))

	return compiled, nil
}
