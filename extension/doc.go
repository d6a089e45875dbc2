// Package extension loads configuration extensions into a container.Builder.
//
// An extension owns one section of the application config, named after its
// alias. Loading an extension runs a fixed, ordered list of steps:
//
//  1. parse the section into the extension's typed config, apply defaults, validate
//  2. flatten selected config values into container parameters
//  3. load the extension's resource files in the declared order
//  4. register entity mappings (MappingsProvider only)
//  5. bind entity interfaces to their configured classes (EntitiesOverridable only)
//  6. run the extension's PostLoad hook
//
// A Kernel boots several extensions in registration order and compiles the
// result into a container.Container.
package extension
