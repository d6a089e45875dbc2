package inspect

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-comment/container"

	"go.uber.org/fx"
)

// NewModule creates an Fx module serving the compiled container under name.
// With options the module supplies its own Config; without, a Config named
// name must be provided to the graph.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		var cfg Config

		for _, apply := range opts {
			apply(&cfg)
		}

		moduleOpts = append(moduleOpts, fx.Supply(fx.Annotate(cfg, fx.ResultTags(tag))))
	}

	moduleOpts = append(moduleOpts, fx.Invoke(
		fx.Annotate(
			func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, compiled *container.Container, cfg Config) error {
				handler, err := NewHandler(compiled)
				if err != nil {
					return err
				}

				srv, err := NewServer(name, handler, cfg, func() {
					shutdownErr := shutdowner.Shutdown()
					if shutdownErr != nil {
						slog.Error("failed to trigger shutdown", "name", name, "error", shutdownErr)
					}
				})
				if err != nil {
					return err
				}

				lifecycle.Append(fx.StartStopHook(srv.Start, srv.Stop))

				return nil
			},
			fx.ParamTags("", "", "", tag),
		),
	))

	return fx.Module(name, moduleOpts...)
}
