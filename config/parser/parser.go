// Package parser selects a config.Parser implementation by format.
package parser

import (
	"fmt"

	"github.com/0xalexb/hjarta-comment/config"
	xmlparser "github.com/0xalexb/hjarta-comment/config/parser/xml"
	yamlparser "github.com/0xalexb/hjarta-comment/config/parser/yaml"
)

// ForFormat returns the parser registered for format.
//
//nolint:ireturn // callers only need the config.Parser contract
func ForFormat(format config.Format) (config.Parser, error) {
	switch format {
	case config.FormatYAML:
		return yamlparser.NewParser(), nil
	case config.FormatXML:
		return xmlparser.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
}

// ForFile returns the parser matching the extension of fpath.
//
//nolint:ireturn // see ForFormat
func ForFile(fpath string) (config.Parser, error) {
	format, err := config.FormatOf(fpath)
	if err != nil {
		return nil, err
	}

	return ForFormat(format)
}
