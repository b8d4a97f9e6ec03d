// Package analyze computes class chains of Go packages without running them.
//
// It uses golang.org/x/tools/go/packages with go/types to find, for every
// named struct type, the parent the runtime lineage would give it: the first
// embedded struct field, pointer or not. Embedded interfaces are reported
// and skipped, the same way dispatch skips them.
//
// Key types:
//   - TypeID: package import path + type name
//   - ClassInfo: a named struct with its parent link
//   - ClassGraph: every class found in the loaded packages
package analyze
