// Package container holds the dependency-injection registry that extensions
// populate while the application boots.
//
// A Builder collects parameters, service definitions, aliases, entity
// overrides, and entity mappings. It is not safe for concurrent use; the
// boot sequence owns it exclusively. Compile freezes the builder into a
// read-only Container:
//
//	builder := container.NewBuilder()
//	builder.SetParameter("elcodi.core.comment.parser", "elcodi.comment.parser_adapter.none")
//	_ = builder.SetDefinition("elcodi.comment.parser_adapter.none", container.Definition{Class: "NoneParserAdapter"})
//	_ = builder.SetAlias("elcodi.comment.parser_adapter", "%elcodi.core.comment.parser%")
//	c, err := builder.Compile()
//
// # Parameters
//
// Strings in definitions and parameters may reference other parameters with
// %name% placeholders. A string made of a single placeholder takes the
// referenced value with its type; placeholders embedded in longer strings are
// replaced with the value's text. %% stands for a literal percent sign.
//
// # Overrides
//
// An override binds an interface identifier to the concrete class chosen by
// configuration. Supplying a Registry to Compile resolves every override to a
// Factory once, so that Make can build instances without further lookups.
package container
