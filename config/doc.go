// Package config provides configuration management functionalities and interfaces.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into config struct, with path navigation support
//   - DataFetcher: retrieves raw config data (file, memory, etc.)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// # Path Navigation
//
// Decode and Provider accept a path parameter that targets a specific
// section within configuration files. Paths use colon (:) as the separator:
//
//	"elcodi_comment"            -> config["elcodi_comment"]
//	"elcodi_comment:comments"   -> config["elcodi_comment"]["comments"]
//	""                          -> entire document
//
// Extensions load their own section, named after the extension alias. A
// section may be absent from the application config entirely; pass Optional
// to fall back on the defaults in that case.
//
// # Example
//
//	type CommentsConfig struct {
//	    CacheKey string `yaml:"cache_key"`
//	    Parser   string `yaml:"parser"`
//	}
//
//	provider := config.Provider(&CommentsConfig{}, "elcodi_comment:comments")
//	cfg, err := provider(yamlparser.NewParser(), static.NewFetcher(data))
package config
