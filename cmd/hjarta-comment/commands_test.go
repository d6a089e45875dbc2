package main

import (
	"bytes"
	"strings"
	"testing"

	comment "github.com/0xalexb/hjarta-comment"
	"github.com/0xalexb/hjarta-comment/commentbundle"
	"github.com/0xalexb/hjarta-comment/container"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestDump_DefaultsAsYAML(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execute(t, "dump")
	require.Equal(t, ExitSuccess, code, stderr)

	var out map[string]any

	require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))
	assert.Contains(t, out, "parameters")
	assert.Contains(t, out, "services")
	assert.Contains(t, out, "aliases")
	assert.Contains(t, out, "overrides")
	assert.Contains(t, out, "mappings")

	parameters, ok := out["parameters"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, commentbundle.DefaultCacheKey, parameters[commentbundle.ParamCacheKey])
}

func TestDump_SectionAsJSON(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execute(t, "dump", "--config", "testdata/app.yml", "--format", "json", "--section", "aliases")
	require.Equal(t, ExitSuccess, code, stderr)

	var aliases map[string]string

	require.NoError(t, json.Unmarshal([]byte(stdout), &aliases))
	assert.Equal(t, map[string]string{
		commentbundle.ParserAdapterID: "elcodi.comment.parser_adapter.markdown",
	}, aliases)
}

func TestDump_MappingsRespectEnabled(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execute(t, "dump", "-c", "testdata/app.yml", "-f", "json", "-s", "mappings")
	require.Equal(t, ExitSuccess, code, stderr)

	var mappings []container.EntityMapping

	require.NoError(t, json.Unmarshal([]byte(stdout), &mappings))
	require.Len(t, mappings, 1)
	assert.Equal(t, commentbundle.DefaultCommentClass, mappings[0].Class)
}

func TestDump_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{
			name:     "missing config file",
			args:     []string{"dump", "--config", "testdata/missing.yml"},
			wantCode: ExitConfigError,
			wantErr:  "failed to boot container",
		},
		{
			name:     "alias to undefined service",
			args:     []string{"dump", "--config", "testdata/dangling.yml"},
			wantCode: ExitConfigError,
			wantErr:  "acme.missing_parser",
		},
		{
			name:     "unknown output format",
			args:     []string{"dump", "--format", "toml"},
			wantCode: ExitGenericError,
			wantErr:  "unknown output format",
		},
		{
			name:     "unknown section",
			args:     []string{"dump", "--section", "tags"},
			wantCode: ExitGenericError,
			wantErr:  "unknown section",
		},
		{
			name:     "unexpected argument",
			args:     []string{"dump", "extra"},
			wantCode: ExitGenericError,
			wantErr:  "unknown command",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			code, _, stderr := execute(t, testCase.args...)
			assert.Equal(t, testCase.wantCode, code)
			assert.Contains(t, stderr, testCase.wantErr)
		})
	}
}

func TestServe_ConfigError(t *testing.T) {
	t.Parallel()

	code, _, stderr := execute(t, "serve", "--config", "testdata/missing.yml", "--address", "127.0.0.1:0")
	assert.Equal(t, ExitConfigError, code)
	assert.Contains(t, stderr, "failed to boot container")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	code, stdout, _ := execute(t, "version")
	require.Equal(t, ExitSuccess, code)
	assert.True(t, strings.HasPrefix(stdout, "hjarta-comment "+comment.Version))
	assert.Contains(t, stdout, comment.CompiledAt)
}

func TestCLIError(t *testing.T) {
	t.Parallel()

	cause := assert.AnError
	err := newConfigError("boot failed", cause)

	assert.Equal(t, "boot failed: "+cause.Error(), err.Error())
	assert.Equal(t, ExitConfigError, err.ExitCode())
	require.ErrorIs(t, err, cause)

	bare := &CLIError{Code: ExitGenericError, Message: "plain"}
	assert.Equal(t, "plain", bare.Error())
}
