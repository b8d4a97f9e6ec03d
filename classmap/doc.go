// Package classmap provides dispatch tables keyed by class.
//
// Every table resolves a query the same way: the value's class (its type with
// pointers stripped) is looked up first, then its ancestors as described by a
// lineage.Lineage, nearest first. Answers are memoized per class.
//
// Tables:
//   - ClassMap: class to value, with an optional default
//   - ClassSet: membership, where an ancestor implies its descendants
//   - FunctionClassMap: class to func(T) (R, error)
//   - BiFunctionClassMap: class to func(T, U) (R, error)
//   - BiConsumerClassMap: class to func(T, U) error, optionally ignoring misses
//   - MultiFunction: class to func(*MultiFunction, T) (R, error) for recursive dispatch
//
// All default setters (WithDefault, WithDefaultFunc, ...) return a new table
// and leave the receiver untouched. Tables are not safe for concurrent use:
// lookups write to the resolution cache.
package classmap
