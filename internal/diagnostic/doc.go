// Package diagnostic provides structured errors, warnings and notes produced
// while building class lineages.
//
// Key capabilities:
//   - Unknown type names in lineage files
//   - Rejected declarations (cycles, interfaces, conflicting parents)
//   - Notes on embedded interfaces that are not walked by the resolver
package diagnostic
