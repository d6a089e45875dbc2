package extension

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-comment/config"
	"github.com/0xalexb/hjarta-comment/container"
	"github.com/0xalexb/hjarta-comment/logging"
)

// Load parses the section of ext from the data served by fetcher, then runs
// the extension pipeline against builder. A missing section loads the
// extension with its defaults.
func Load[C any](ext Extension[C], parser config.Parser, fetcher config.DataFetcher, builder *container.Builder) error {
	alias := ext.Alias()
	if alias == "" {
		return ErrEmptyAlias
	}

	cfg := ext.Configuration()

	err := config.Decode(parser, fetcher, cfg, alias, config.Optional())
	if err != nil {
		return fmt.Errorf("extension %q: %w", alias, err)
	}

	err = Run(cfg, builder, Pipeline(ext)...)
	if err != nil {
		return fmt.Errorf("extension %q: %w", alias, err)
	}

	logging.ForExtension(slog.Default(), alias).Info("extension loaded",
		slog.Int("parameters", len(ext.ParametrizationValues(cfg))),
		slog.Int("files", len(ext.ConfigFiles(cfg))),
	)

	return nil
}
