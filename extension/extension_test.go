package extension_test

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/0xalexb/hjarta-comment/config/fetcher/static"
	yamlparser "github.com/0xalexb/hjarta-comment/config/parser/yaml"
	"github.com/0xalexb/hjarta-comment/container"
	"github.com/0xalexb/hjarta-comment/extension"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMissingName = errors.New("name must not be empty")

type ratingConfig struct {
	Name    string `yaml:"name"`
	Enabled *bool  `yaml:"enabled"`
	Backend string `yaml:"backend"`
}

func (c *ratingConfig) SetDefaults() bool {
	changed := false

	if c.Name == "" {
		c.Name = "stars"
		changed = true
	}

	if c.Enabled == nil {
		enabled := true
		c.Enabled = &enabled
		changed = true
	}

	if c.Backend == "" {
		c.Backend = "acme.rating.backend.memory"
		changed = true
	}

	return changed
}

func (c *ratingConfig) Validate() error {
	if c.Name == "blank" {
		return errMissingName
	}

	return nil
}

type ratingExtension struct {
	resources fs.FS
	files     []string
	postLoad  func(cfg *ratingConfig, builder *container.Builder) error
	calls     []string
}

func (e *ratingExtension) Alias() string { return "acme_rating" }

func (e *ratingExtension) Configuration() *ratingConfig {
	e.calls = append(e.calls, "configuration")

	return &ratingConfig{}
}

func (e *ratingExtension) ParametrizationValues(cfg *ratingConfig) map[string]any {
	return map[string]any{
		"acme.rating.entity.rating.class":        `Acme\Rating\` + cfg.Name,
		"acme.rating.entity.rating.mapping_file": "Rating.orm.yml",
		"acme.rating.entity.rating.manager":      "default",
		"acme.rating.entity.rating.enabled":      *cfg.Enabled,
		"acme.rating.backend":                    cfg.Backend,
	}
}

func (e *ratingExtension) ConfigFilesLocation() string { return "Resources/config" }

func (e *ratingExtension) ConfigFiles(_ *ratingConfig) []string { return e.files }

func (e *ratingExtension) Resources() fs.FS { return e.resources }

func (e *ratingExtension) PostLoad(cfg *ratingConfig, builder *container.Builder) error {
	e.calls = append(e.calls, "postload")

	if e.postLoad != nil {
		return e.postLoad(cfg, builder)
	}

	return builder.SetAlias("acme.rating.backend.default", cfg.Backend)
}

func (e *ratingExtension) EntitiesOverrides() map[string]string {
	return map[string]string{`Acme\Rating\RatingInterface`: "acme.rating.entity.rating.class"}
}

func (e *ratingExtension) EntityMappings() []string {
	return []string{"acme.rating.entity.rating"}
}

func newRatingExtension() *ratingExtension {
	return &ratingExtension{
		resources: fstest.MapFS{
			"Resources/config/classes.yml": &fstest.MapFile{Data: []byte(`
parameters:
  acme.rating.manager.class: Acme\Rating\Manager
`)},
			"Resources/config/services.yml": &fstest.MapFile{Data: []byte(`
services:
  acme.rating.manager:
    class: "%acme.rating.manager.class%"
    arguments: ["@acme.rating.backend.default", "%acme.rating.entity.rating.class%"]
    tags: [kernel.event_subscriber]
  acme.rating.backend.memory:
    class: Acme\Rating\MemoryBackend
    public: false
  acme.rating.manager.legacy:
    alias: acme.rating.manager
`)},
			"Resources/config/empty.yml": &fstest.MapFile{Data: []byte("\n")},
		},
		files: []string{"classes", "services", "empty"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	ext := newRatingExtension()
	builder := container.NewBuilder()

	err := extension.Load[ratingConfig](ext, yamlparser.NewParser(), static.NewFetcher(nil), builder)
	require.NoError(t, err)

	class, err := builder.Parameter("acme.rating.entity.rating.class")
	require.NoError(t, err)
	assert.Equal(t, `Acme\Rating\stars`, class)

	assert.Equal(t, []string{"configuration", "postload"}, ext.calls)

	target, err := builder.ResolveAlias("acme.rating.backend.default")
	require.NoError(t, err)
	assert.Equal(t, "acme.rating.backend.memory", target)
}

func TestLoad_ParsesSection(t *testing.T) {
	t.Parallel()

	data := []byte(`
framework: {}
acme_rating:
  name: thumbs
  backend: acme.rating.backend.redis
`)

	ext := newRatingExtension()
	builder := container.NewBuilder()

	err := extension.Load[ratingConfig](ext, yamlparser.NewParser(), static.NewFetcher(data), builder)
	require.NoError(t, err)

	backend, err := builder.Parameter("acme.rating.backend")
	require.NoError(t, err)
	assert.Equal(t, "acme.rating.backend.redis", backend)

	assert.Equal(t, map[string]string{`Acme\Rating\RatingInterface`: `Acme\Rating\thumbs`}, builder.Overrides())
}

func TestLoad_ConfigFiles(t *testing.T) {
	t.Parallel()

	builder := container.NewBuilder()

	err := extension.Load[ratingConfig](newRatingExtension(), yamlparser.NewParser(), static.NewFetcher(nil), builder)
	require.NoError(t, err)

	manager, ok := builder.Definition("acme.rating.manager")
	require.True(t, ok)
	assert.Equal(t, "%acme.rating.manager.class%", manager.Class)
	assert.Equal(t, []string{"kernel.event_subscriber"}, manager.Tags)
	assert.True(t, manager.Public)

	backend, ok := builder.Definition("acme.rating.backend.memory")
	require.True(t, ok)
	assert.False(t, backend.Public)

	legacy, ok := builder.Alias("acme.rating.manager.legacy")
	require.True(t, ok)
	assert.Equal(t, "acme.rating.manager", legacy)

	compiled, err := builder.Compile()
	require.NoError(t, err)

	resolved, err := compiled.Definition("acme.rating.manager")
	require.NoError(t, err)
	assert.Equal(t, `Acme\Rating\Manager`, resolved.Class)
	assert.Equal(t, []any{"@acme.rating.backend.default", `Acme\Rating\stars`}, resolved.Arguments)
}

func TestLoad_Mappings(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		data      string
		wantCount int
	}{
		{name: "enabled by default", data: "", wantCount: 1},
		{name: "disabled", data: "acme_rating:\n  enabled: false\n", wantCount: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			builder := container.NewBuilder()

			err := extension.Load[ratingConfig](newRatingExtension(), yamlparser.NewParser(), static.NewFetcher([]byte(tc.data)), builder)
			require.NoError(t, err)

			mappings := builder.Mappings()
			require.Len(t, mappings, tc.wantCount)

			if tc.wantCount > 0 {
				assert.Equal(t, container.EntityMapping{
					Name:        "acme.rating.entity.rating",
					Class:       `Acme\Rating\stars`,
					MappingFile: "Rating.orm.yml",
					Manager:     "default",
				}, mappings[0])
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	postLoadErr := errors.New("post load failed")

	testCases := []struct {
		name    string
		data    string
		mutate  func(ext *ratingExtension)
		wantErr error
	}{
		{
			name:    "validation",
			data:    "acme_rating:\n  name: blank\n",
			mutate:  func(_ *ratingExtension) {},
			wantErr: errMissingName,
		},
		{
			name:    "missing config file",
			data:    "",
			mutate:  func(ext *ratingExtension) { ext.files = append(ext.files, "eventListeners") },
			wantErr: extension.ErrResourceNotFound,
		},
		{
			name: "post load",
			data: "",
			mutate: func(ext *ratingExtension) {
				ext.postLoad = func(_ *ratingConfig, _ *container.Builder) error { return postLoadErr }
			},
			wantErr: postLoadErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ext := newRatingExtension()
			tc.mutate(ext)

			err := extension.Load[ratingConfig](ext, yamlparser.NewParser(), static.NewFetcher([]byte(tc.data)), container.NewBuilder())
			require.ErrorIs(t, err, tc.wantErr)
			assert.Contains(t, err.Error(), "acme_rating")
		})
	}
}

func TestLoad_InvalidSyntax(t *testing.T) {
	t.Parallel()

	err := extension.Load[ratingConfig](newRatingExtension(), yamlparser.NewParser(),
		static.NewFetcher([]byte("acme_rating: [unclosed\n")), container.NewBuilder())
	require.Error(t, err)
}

func TestRun_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	stepErr := errors.New("boom")

	var order []int

	steps := []extension.Step[ratingConfig]{
		func(_ *ratingConfig, _ *container.Builder) error {
			order = append(order, 1)

			return nil
		},
		func(_ *ratingConfig, _ *container.Builder) error {
			order = append(order, 2)

			return stepErr
		},
		func(_ *ratingConfig, _ *container.Builder) error {
			order = append(order, 3)

			return nil
		},
	}

	err := extension.Run(&ratingConfig{}, container.NewBuilder(), steps...)
	require.ErrorIs(t, err, stepErr)
	assert.Contains(t, err.Error(), "step 2")
	assert.Equal(t, []int{1, 2}, order)
}

func TestOverridesStep_ParameterErrors(t *testing.T) {
	t.Parallel()

	step := extension.OverridesStep[ratingConfig](newRatingExtension())

	err := step(&ratingConfig{}, container.NewBuilder())
	require.ErrorIs(t, err, container.ErrParameterNotFound)

	builder := container.NewBuilder()
	builder.SetParameter("acme.rating.entity.rating.class", 42)

	err = step(&ratingConfig{}, builder)
	require.ErrorIs(t, err, extension.ErrInvalidParameterType)
}

func TestOverridesStep_SkipsPlainExtensions(t *testing.T) {
	t.Parallel()

	step := extension.OverridesStep[ratingConfig](struct{}{})

	require.NoError(t, step(&ratingConfig{}, container.NewBuilder()))
	require.NoError(t, extension.MappingsStep[ratingConfig](struct{}{})(&ratingConfig{}, container.NewBuilder()))
}
