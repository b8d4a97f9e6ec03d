// Package lineage provides the class chain used by the dispatch tables in
// package classmap.
//
// Go has no class inheritance, so the "is-a" relation is built explicitly.
// A class is a Go type with every pointer level stripped. The parent of a class is:
//   - the type declared with Lineage.Declare, if any
//   - otherwise, for structs, the first embedded field whose type is a struct
//
// Embedded interfaces are never walked, and interface types never take part
// in a chain. Registering an interface as a dispatch key therefore matches
// only queries for that same interface type.
//
// Key types:
//   - Lineage: explicit parent declarations on top of the embedding rule
//   - Resolver: nearest-registered-ancestor lookup, memoized per query type
//   - Catalog: name to type registry used when reading lineage YAML files
package lineage
