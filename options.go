package comment

import (
	"io"

	"github.com/0xalexb/hjarta-comment/config"
	"github.com/0xalexb/hjarta-comment/container"
	"github.com/0xalexb/hjarta-comment/extension"
	"github.com/0xalexb/hjarta-comment/inspect"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules      []fx.Option
	LogLevel     string
	LogFormat    string
	LogOutput    io.Writer
	ConfigFile   string
	ConfigData   []byte
	ConfigFormat config.Format
	Extensions   []extension.Binding
	Registry     *container.Registry
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects logs, which go to stderr by default.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithConfigFile reads the application config from fpath. The parser is
// picked from the file extension (.yml, .yaml, or .xml).
func WithConfigFile(fpath string) Option {
	return func(opts *Options) {
		opts.ConfigFile = fpath
	}
}

// WithConfigData uses data, written in format, as the application config.
// It is ignored when WithConfigFile is also given.
func WithConfigData(data []byte, format config.Format) Option {
	return func(opts *Options) {
		opts.ConfigData = data
		opts.ConfigFormat = format
	}
}

// WithExtensions registers the extensions to boot, in load order. Without
// it the comment bundle extension is booted alone.
func WithExtensions(bindings ...extension.Binding) Option {
	return func(opts *Options) {
		opts.Extensions = append(opts.Extensions, bindings...)
	}
}

// WithRegistry binds every entity override to a factory from registry.
func WithRegistry(registry *container.Registry) Option {
	return func(opts *Options) {
		opts.Registry = registry
	}
}

// WithInspectListener serves the compiled container over HTTP under name.
// When options are provided (e.g., WithAddress), the listener Config is supplied automatically.
func WithInspectListener(name string, opts ...inspect.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, inspect.NewModule(name, opts...))
	}
}
