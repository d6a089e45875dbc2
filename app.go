package comment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-comment/commentbundle"
	"github.com/0xalexb/hjarta-comment/config"
	filefetcher "github.com/0xalexb/hjarta-comment/config/fetcher/file"
	"github.com/0xalexb/hjarta-comment/config/fetcher/static"
	"github.com/0xalexb/hjarta-comment/config/parser"
	"github.com/0xalexb/hjarta-comment/container"
	"github.com/0xalexb/hjarta-comment/extension"
	"github.com/0xalexb/hjarta-comment/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App boots the configured extensions into a container and runs the Fx application around it.
type App struct {
	app       *fx.App
	container *container.Container
}

// NewApp creates a new instance of App with Fx configured.
// The container is booted while the app is built; boot failures are
// reported by Err and Start.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	app := &App{}
	app.app = configure(&options, app)

	return app
}

func configure(options *Options, app *App) *fx.App {
	logConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := logging.NewLogger(logConfig, logOutput(options))
	slog.SetDefault(logger)

	bindings := options.Extensions
	if len(bindings) == 0 {
		bindings = []extension.Binding{extension.Bind[commentbundle.Config](commentbundle.NewExtension())}
	}

	var compileOpts []container.CompileOption
	if options.Registry != nil {
		compileOpts = append(compileOpts, container.WithRegistry(options.Registry))
	}

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logConfig),
		fx.Supply(logger),
		fx.Provide(
			func() (config.Parser, error) { return newParser(options) },
			func() (config.DataFetcher, error) { return newFetcher(options) },
			func() (*extension.Kernel, error) { return extension.NewKernel(bindings...) },
			func(kernel *extension.Kernel, p config.Parser, f config.DataFetcher) (*container.Container, error) {
				return kernel.Boot(p, f, compileOpts...)
			},
		),
		fx.Invoke(func(compiled *container.Container) {
			app.container = compiled
		}),
		fx.Options(options.Modules...),
	)
}

func logOutput(options *Options) io.Writer {
	if options.LogOutput != nil {
		return options.LogOutput
	}

	return os.Stderr
}

//nolint:ireturn // the parser is chosen by config format
func newParser(options *Options) (config.Parser, error) {
	switch {
	case options.ConfigFile != "":
		return parser.ForFile(options.ConfigFile)
	case options.ConfigFormat != "":
		return parser.ForFormat(options.ConfigFormat)
	default:
		return parser.ForFormat(config.FormatYAML)
	}
}

//nolint:ireturn // file or in-memory source
func newFetcher(options *Options) (config.DataFetcher, error) {
	if options.ConfigFile == "" {
		return static.NewFetcher(options.ConfigData), nil
	}

	fetcher, err := filefetcher.NewFetcher(options.ConfigFile)()
	if err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	return fetcher, nil
}

// Err returns the error raised while building the app, if any.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err() //nolint:wrapcheck // fx errors are already descriptive
}

// Container returns the compiled container, or nil when booting failed.
func (app *App) Container() *container.Container {
	if app == nil {
		return nil
	}

	return app.container
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
