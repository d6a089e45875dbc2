package commentbundle

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrMissingValue is returned when a required config value is empty after defaults.
var ErrMissingValue = errors.New("config value must not be empty")

// Default config values.
const (
	DefaultCommentClass       = `Elcodi\Component\Comment\Entity\Comment`
	DefaultCommentMappingFile = "@ElcodiCommentBundle/Resources/config/doctrine/Comment.orm.yml"
	DefaultVoteClass          = `Elcodi\Component\Comment\Entity\Vote`
	DefaultVoteMappingFile    = "@ElcodiCommentBundle/Resources/config/doctrine/Vote.orm.yml"
	DefaultManager            = "default"
	DefaultCacheKey           = "comments"
	DefaultParser             = "elcodi.comment.parser_adapter.none"
)

// Config is the validated "elcodi_comment" section.
type Config struct {
	extensionName string

	Mapping  MappingConfig  `xml:"mapping"  yaml:"mapping"`
	Comments CommentsConfig `xml:"comments" yaml:"comments"`
}

// MappingConfig holds the entity mappings of the bundle.
type MappingConfig struct {
	Comment EntityConfig `xml:"comment" yaml:"comment"`
	Vote    EntityConfig `xml:"vote"    yaml:"vote"`
}

// EntityConfig selects the concrete class and ORM mapping of one entity.
// Enabled is a pointer only so that an absent key can default to true;
// after SetDefaults it is never nil.
type EntityConfig struct {
	Class       string `xml:"class"        yaml:"class"`
	MappingFile string `xml:"mapping_file" yaml:"mapping_file"`
	Manager     string `xml:"manager"      yaml:"manager"`
	Enabled     *bool  `xml:"enabled"      yaml:"enabled"`
}

// CommentsConfig holds the comment services settings.
type CommentsConfig struct {
	CacheKey string `xml:"cache_key" yaml:"cache_key"`
	Parser   string `xml:"parser"    yaml:"parser"`
}

// NewConfig returns an empty config for the extension called name.
func NewConfig(name string) *Config {
	return &Config{extensionName: name}
}

// Name returns the extension name this config belongs to.
func (c *Config) Name() string {
	return c.extensionName
}

// SetDefaults fills every empty value.
func (c *Config) SetDefaults() bool {
	changed := c.Mapping.Comment.setDefaults(DefaultCommentClass, DefaultCommentMappingFile)
	changed = c.Mapping.Vote.setDefaults(DefaultVoteClass, DefaultVoteMappingFile) || changed
	changed = setDefault(&c.Comments.CacheKey, DefaultCacheKey) || changed
	changed = setDefault(&c.Comments.Parser, DefaultParser) || changed

	return changed
}

// Validate reports every missing value at once.
func (c *Config) Validate() error {
	var errs error

	errs = multierr.Append(errs, c.Mapping.Comment.validate("mapping.comment"))
	errs = multierr.Append(errs, c.Mapping.Vote.validate("mapping.vote"))
	errs = multierr.Append(errs, required("comments.cache_key", c.Comments.CacheKey))
	errs = multierr.Append(errs, required("comments.parser", c.Comments.Parser))

	return errs
}

func (e *EntityConfig) setDefaults(class, mappingFile string) bool {
	changed := setDefault(&e.Class, class)
	changed = setDefault(&e.MappingFile, mappingFile) || changed
	changed = setDefault(&e.Manager, DefaultManager) || changed

	if e.Enabled == nil {
		enabled := true
		e.Enabled = &enabled
		changed = true
	}

	return changed
}

func (e *EntityConfig) validate(prefix string) error {
	var errs error

	errs = multierr.Append(errs, required(prefix+".class", e.Class))
	errs = multierr.Append(errs, required(prefix+".mapping_file", e.MappingFile))
	errs = multierr.Append(errs, required(prefix+".manager", e.Manager))

	if e.Enabled == nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s.enabled", ErrMissingValue, prefix))
	}

	return errs
}

func setDefault(field *string, value string) bool {
	if *field != "" {
		return false
	}

	*field = value

	return true
}

func required(key, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrMissingValue, key)
	}

	return nil
}
