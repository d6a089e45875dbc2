package commentbundle

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/0xalexb/hjarta-comment/container"
)

// ExtensionName is the alias of the extension and the name of its config section.
const ExtensionName = "elcodi_comment"

// ParserAdapterID is the service id aliased to the configured parser adapter.
const ParserAdapterID = "elcodi.comment.parser_adapter"

// Entity interface identifiers that can be bound to configured classes.
const (
	CommentInterface = `Elcodi\Component\Comment\Entity\Interfaces\CommentInterface`
	VoteInterface    = `Elcodi\Component\Comment\Entity\Interfaces\VoteInterface`
)

// Parameter names set by the extension.
const (
	ParamCommentClass       = "elcodi.core.comment.entity.comment.class"
	ParamCommentMappingFile = "elcodi.core.comment.entity.comment.mapping_file"
	ParamCommentManager     = "elcodi.core.comment.entity.comment.manager"
	ParamCommentEnabled     = "elcodi.core.comment.entity.comment.enabled"
	ParamVoteClass          = "elcodi.core.comment.entity.vote.class"
	ParamVoteMappingFile    = "elcodi.core.comment.entity.vote.mapping_file"
	ParamVoteManager        = "elcodi.core.comment.entity.vote.manager"
	ParamVoteEnabled        = "elcodi.core.comment.entity.vote.enabled"
	ParamCacheKey           = "elcodi.core.comment.cache_key"
	ParamParser             = "elcodi.core.comment.parser"
)

const configFilesLocation = "Resources/config"

//go:embed Resources/config/*.yml
var resources embed.FS

// Extension loads the comment bundle configuration.
type Extension struct{}

// NewExtension returns the comment bundle extension.
func NewExtension() *Extension {
	return &Extension{}
}

// Alias returns the extension name.
func (e *Extension) Alias() string {
	return ExtensionName
}

// Configuration returns a new config schema bound to the extension name.
func (e *Extension) Configuration() *Config {
	return NewConfig(ExtensionName)
}

// ConfigFilesLocation returns the resource directory of the bundled config files.
func (e *Extension) ConfigFilesLocation() string {
	return configFilesLocation
}

// Resources returns the embedded bundle resources.
//
//nolint:ireturn // embed.FS is exposed through fs.FS only
func (e *Extension) Resources() fs.FS {
	return resources
}

// ParametrizationValues maps the validated config onto parameters. Values
// are copied as they are.
func (e *Extension) ParametrizationValues(cfg *Config) map[string]any {
	return map[string]any{
		ParamCommentClass:       cfg.Mapping.Comment.Class,
		ParamCommentMappingFile: cfg.Mapping.Comment.MappingFile,
		ParamCommentManager:     cfg.Mapping.Comment.Manager,
		ParamCommentEnabled:     *cfg.Mapping.Comment.Enabled,

		ParamVoteClass:       cfg.Mapping.Vote.Class,
		ParamVoteMappingFile: cfg.Mapping.Vote.MappingFile,
		ParamVoteManager:     cfg.Mapping.Vote.Manager,
		ParamVoteEnabled:     *cfg.Mapping.Vote.Enabled,

		ParamCacheKey: cfg.Comments.CacheKey,
		ParamParser:   cfg.Comments.Parser,
	}
}

// ConfigFiles lists the bundled config files. Later files may reference
// services defined in earlier ones.
func (e *Extension) ConfigFiles(_ *Config) []string {
	return []string{
		"classes",
		"services",
		"factories",
		"repositories",
		"objectManagers",
		"eventListeners",
		"eventDispatchers",
		"parserAdapters",
	}
}

// EntitiesOverrides maps each entity interface to the parameter holding its class.
func (e *Extension) EntitiesOverrides() map[string]string {
	return map[string]string{
		CommentInterface: ParamCommentClass,
		VoteInterface:    ParamVoteClass,
	}
}

// EntityMappings lists the parameter prefixes of the bundle entities.
func (e *Extension) EntityMappings() []string {
	return []string{
		"elcodi.core.comment.entity.comment",
		"elcodi.core.comment.entity.vote",
	}
}

// PostLoad aliases the parser adapter service to the configured parser.
func (e *Extension) PostLoad(cfg *Config, builder *container.Builder) error {
	err := builder.SetAlias(ParserAdapterID, cfg.Comments.Parser)
	if err != nil {
		return fmt.Errorf("aliasing parser adapter: %w", err)
	}

	return nil
}
