package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// ErrEmptyData is returned by parsers when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned by parsers when the requested section does not exist.
var ErrPathNotFound = errors.New("path not found")

// ErrUnknownFormat is returned when no parser matches a file format.
var ErrUnknownFormat = errors.New("unknown config format")

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "elcodi_comment" navigates to config["elcodi_comment"]
//   - "elcodi_comment:mapping:comment" navigates three levels deep
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally and
// must wrap ErrPathNotFound and ErrEmptyData so callers can detect them.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// DecodeOption tunes a single Decode call.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	optional bool
}

// Optional makes a missing section or an empty document acceptable.
// The target then only receives its defaults.
func Optional() DecodeOption {
	return func(opts *decodeOptions) {
		opts.optional = true
	}
}

// Decode reads, parses, sets defaults, and validates configuration data into target.
func Decode(parser Parser, fetcher DataFetcher, target any, path string, opts ...DecodeOption) error {
	var options decodeOptions

	for _, apply := range opts {
		apply(&options)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return fmt.Errorf("reading data error: %w", err)
	}

	err = parser.Parse(data, target, path)
	if err != nil {
		missing := errors.Is(err, ErrPathNotFound) || errors.Is(err, ErrEmptyData)
		if !options.optional || !missing {
			return fmt.Errorf("parsing error: %w", err)
		}

		slog.Debug("config section absent", slog.String("path", path))
	}

	targetDefaulter, isDefaulter := target.(Defaulter)
	if isDefaulter {
		changed := targetDefaulter.SetDefaults()
		if changed {
			slog.Info("defaults applied", slog.String("path", path))
		}
	}

	targetValidatable, isValidatable := target.(Validator)
	if isValidatable {
		err := targetValidatable.Validate()
		if err != nil {
			return fmt.Errorf("validating error: %w", err)
		}
	}

	return nil
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
func Provider[T any](target *T, path string, opts ...DecodeOption) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		err := Decode(parser, dataSourcer, target, path, opts...)
		if err != nil {
			return nil, err
		}

		return target, nil
	}
}

// Format names a configuration syntax.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// FormatOf derives the format from a file name extension.
func FormatOf(fpath string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fpath)) {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".xml":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, fpath)
	}
}
