// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for efficient path navigation. The parser converts
// colon-separated paths (e.g., "elcodi_comment:comments") to YAML path format
// (e.g., "$.elcodi_comment.comments") internally.
//
// Usage:
//
//	parser := yaml.NewParser()
//	var cfg CommentsConfig
//	err := parser.Parse(data, &cfg, "elcodi_comment:comments")
//
// Path Conversion:
//   - Empty path "" -> unmarshal entire document
//   - Single key "key" -> "$.key"
//   - Nested path "a:b" -> "$.a.b"
//
// Missing sections wrap config.ErrPathNotFound, empty documents return
// config.ErrEmptyData.
package yaml
