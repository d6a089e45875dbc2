package extension

import (
	"errors"
	"io/fs"

	"github.com/0xalexb/hjarta-comment/container"
)

// ErrEmptyAlias is returned when an extension has no alias.
var ErrEmptyAlias = errors.New("extension alias must not be empty")

// ErrDuplicateExtension is returned when two extensions share an alias.
var ErrDuplicateExtension = errors.New("extension already registered")

// ErrResourceNotFound is returned when a declared config file does not exist.
var ErrResourceNotFound = errors.New("config resource not found")

// ErrInvalidParameterType is returned when a parameter read by a loading step has the wrong type.
var ErrInvalidParameterType = errors.New("invalid parameter type")

// Extension translates its typed configuration C into container state.
type Extension[C any] interface {
	// Alias names the config section this extension owns.
	Alias() string
	// Configuration returns a new, unparsed config instance. When *C
	// implements config.Defaulter or config.Validator they run after parsing.
	Configuration() *C
	// ParametrizationValues flattens the validated config into parameters.
	ParametrizationValues(cfg *C) map[string]any
	// ConfigFilesLocation is the directory, inside Resources, holding the config files.
	ConfigFilesLocation() string
	// ConfigFiles lists config file base names in load order.
	ConfigFiles(cfg *C) []string
	// Resources is the file system the config files are read from.
	Resources() fs.FS
	// PostLoad runs after every other step.
	PostLoad(cfg *C, builder *container.Builder) error
}

// EntitiesOverridable is implemented by extensions whose entity interfaces
// resolve to configurable classes. Keys are interface identifiers, values are
// the names of the parameters holding the concrete class.
type EntitiesOverridable interface {
	EntitiesOverrides() map[string]string
}

// MappingsProvider is implemented by extensions declaring ORM entity mappings.
// Each entry is a parameter prefix p; the mapping is read from p.class,
// p.mapping_file, p.manager, and p.enabled.
type MappingsProvider interface {
	EntityMappings() []string
}
