package commentbundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(ExtensionName)

	changed := cfg.SetDefaults()
	require.True(t, changed)

	assert.Equal(t, DefaultCommentClass, cfg.Mapping.Comment.Class)
	assert.Equal(t, DefaultCommentMappingFile, cfg.Mapping.Comment.MappingFile)
	assert.Equal(t, DefaultManager, cfg.Mapping.Comment.Manager)
	require.NotNil(t, cfg.Mapping.Comment.Enabled)
	assert.True(t, *cfg.Mapping.Comment.Enabled)

	assert.Equal(t, DefaultVoteClass, cfg.Mapping.Vote.Class)
	assert.Equal(t, DefaultVoteMappingFile, cfg.Mapping.Vote.MappingFile)
	assert.Equal(t, DefaultManager, cfg.Mapping.Vote.Manager)
	require.NotNil(t, cfg.Mapping.Vote.Enabled)
	assert.True(t, *cfg.Mapping.Vote.Enabled)

	assert.Equal(t, DefaultCacheKey, cfg.Comments.CacheKey)
	assert.Equal(t, DefaultParser, cfg.Comments.Parser)

	assert.False(t, cfg.SetDefaults(), "second pass has nothing left to fill")
}

func TestConfig_SetDefaultsKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	disabled := false
	cfg := NewConfig(ExtensionName)
	cfg.Mapping.Vote = EntityConfig{
		Class:       `Acme\Vote`,
		MappingFile: "Vote.orm.xml",
		Manager:     "votes",
		Enabled:     &disabled,
	}
	cfg.Comments.Parser = "acme.custom_parser"

	cfg.SetDefaults()

	assert.Equal(t, `Acme\Vote`, cfg.Mapping.Vote.Class)
	assert.Equal(t, "Vote.orm.xml", cfg.Mapping.Vote.MappingFile)
	assert.Equal(t, "votes", cfg.Mapping.Vote.Manager)
	assert.False(t, *cfg.Mapping.Vote.Enabled)
	assert.Equal(t, "acme.custom_parser", cfg.Comments.Parser)
	assert.Equal(t, DefaultCommentClass, cfg.Mapping.Comment.Class)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(ExtensionName)
	cfg.SetDefaults()

	require.NoError(t, cfg.Validate())
}

func TestConfig_ValidateReportsEveryMissingValue(t *testing.T) {
	t.Parallel()

	err := NewConfig(ExtensionName).Validate()

	require.ErrorIs(t, err, ErrMissingValue)

	for _, key := range []string{
		"mapping.comment.class",
		"mapping.comment.mapping_file",
		"mapping.comment.manager",
		"mapping.comment.enabled",
		"mapping.vote.class",
		"mapping.vote.enabled",
		"comments.cache_key",
		"comments.parser",
	} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestConfig_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "elcodi_comment", NewConfig(ExtensionName).Name())
}
