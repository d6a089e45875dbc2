package extension

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"slices"

	"github.com/0xalexb/hjarta-comment/config"
	filefetcher "github.com/0xalexb/hjarta-comment/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-comment/config/parser/yaml"
	"github.com/0xalexb/hjarta-comment/container"
)

// ResourceExtension is the file extension of config resources.
const ResourceExtension = ".yml"

type resourceFile struct {
	Parameters map[string]any          `yaml:"parameters"`
	Services   map[string]serviceEntry `yaml:"services"`
}

type serviceEntry struct {
	Alias     string   `yaml:"alias"`
	Class     string   `yaml:"class"`
	Arguments []any    `yaml:"arguments"`
	Tags      []string `yaml:"tags"`
	Public    *bool    `yaml:"public"`
}

// LoadResource reads one YAML resource file from fsys and applies it to builder.
// An empty file is a no-op.
func LoadResource(fsys fs.FS, name string, builder *container.Builder) error {
	fetcher, err := filefetcher.NewFetcherFS(fsys, name)()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}

		return err
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	var resource resourceFile

	err = yamlparser.NewParser().Parse(data, &resource, "")
	if errors.Is(err, config.ErrEmptyData) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	for _, key := range slices.Sorted(maps.Keys(resource.Parameters)) {
		builder.SetParameter(key, resource.Parameters[key])
	}

	for _, id := range slices.Sorted(maps.Keys(resource.Services)) {
		err = applyService(builder, id, resource.Services[id])
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	slog.Debug("config resource loaded",
		slog.String("file", name),
		slog.Int("parameters", len(resource.Parameters)),
		slog.Int("services", len(resource.Services)),
	)

	return nil
}

func applyService(builder *container.Builder, id string, entry serviceEntry) error {
	if entry.Alias != "" {
		return builder.SetAlias(id, entry.Alias)
	}

	public := true
	if entry.Public != nil {
		public = *entry.Public
	}

	return builder.SetDefinition(id, container.Definition{
		Class:     entry.Class,
		Arguments: entry.Arguments,
		Tags:      entry.Tags,
		Public:    public,
	})
}
