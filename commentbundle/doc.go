// Package commentbundle is the configuration extension of the comment bundle.
//
// The extension owns the "elcodi_comment" config section:
//
//	elcodi_comment:
//	  mapping:
//	    comment:
//	      class: Elcodi\Component\Comment\Entity\Comment
//	      mapping_file: "@ElcodiCommentBundle/Resources/config/doctrine/Comment.orm.yml"
//	      manager: default
//	      enabled: true
//	    vote:
//	      class: Elcodi\Component\Comment\Entity\Vote
//	      mapping_file: "@ElcodiCommentBundle/Resources/config/doctrine/Vote.orm.yml"
//	      manager: default
//	      enabled: true
//	  comments:
//	    cache_key: comments
//	    parser: elcodi.comment.parser_adapter.none
//
// Every key is optional; the values above are the defaults. The section is
// flattened into elcodi.core.comment.* parameters, the bundled service files
// are loaded from Resources/config, the Comment and Vote interfaces are bound
// to the configured classes, and elcodi.comment.parser_adapter is aliased to
// the configured parser.
package commentbundle
