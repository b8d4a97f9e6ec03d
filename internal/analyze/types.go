package analyze

import (
	"slices"
	"strings"

	"class-dispatch/internal/common"
	"class-dispatch/lineage"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "class-dispatch/zoo"
	Name    string // e.g., "Integer"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the name as reflect prints it, e.g. "zoo.Integer".
func (t TypeID) Short() string {
	if alias := common.PkgAlias(t.PkgPath); alias != "" {
		return alias + "." + t.Name
	}

	return t.Name
}

// IsZero reports whether t names nothing.
func (t TypeID) IsZero() bool {
	return t.Name == ""
}

// ClassInfo describes a named struct type and its parent.
type ClassInfo struct {
	ID       TypeID
	Exported bool
	// ParentID is the first embedded struct; zero for roots.
	ParentID TypeID
	// Parent is set when ParentID is a class of the loaded packages.
	Parent *ClassInfo
	Origin Origin
	// Interfaces lists embedded interfaces, which never act as parents.
	Interfaces []TypeID
}

// IsRoot reports whether the class has no parent.
func (c *ClassInfo) IsRoot() bool {
	return c.Origin == OriginRoot
}

// Chain returns the class followed by its ancestors, nearest first.
// An ancestor outside the loaded packages ends the chain.
func (c *ClassInfo) Chain() []TypeID {
	chain := []TypeID{c.ID}
	seen := map[TypeID]bool{c.ID: true}

	for cur := c; !cur.ParentID.IsZero() && !seen[cur.ParentID]; cur = cur.Parent {
		chain = append(chain, cur.ParentID)
		seen[cur.ParentID] = true

		if cur.Parent == nil {
			break
		}
	}

	return chain
}

// ClassGraph holds all classes found in loaded packages.
type ClassGraph struct {
	// Classes maps TypeID to ClassInfo for all named struct types.
	Classes map[TypeID]*ClassInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewClassGraph creates a new empty ClassGraph.
func NewClassGraph() *ClassGraph {
	return &ClassGraph{
		Classes:  make(map[TypeID]*ClassInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetClass returns the ClassInfo for a given TypeID, or nil if not found.
func (g *ClassGraph) GetClass(id TypeID) *ClassInfo {
	return g.Classes[id]
}

// Sorted returns every class ordered by its full name.
func (g *ClassGraph) Sorted() []*ClassInfo {
	out := make([]*ClassInfo, 0, len(g.Classes))
	for _, c := range g.Classes {
		out = append(out, c)
	}

	slices.SortFunc(out, func(a, b *ClassInfo) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return out
}

// Children returns the classes whose parent is id, ordered by name.
func (g *ClassGraph) Children(id TypeID) []*ClassInfo {
	var out []*ClassInfo
	for _, c := range g.Sorted() {
		if c.ParentID == id {
			out = append(out, c)
		}
	}

	return out
}

// LineageFile renders the parent links of exported classes as a lineage
// file. Embedding links are found at runtime anyway; the file pins them
// explicitly so the hierarchy can be reviewed and edited.
func (g *ClassGraph) LineageFile() *lineage.File {
	f := &lineage.File{
		Version: lineage.CurrentVersion,
		Extends: make(map[string]string),
	}

	for _, c := range g.Sorted() {
		if c.IsRoot() || !c.Exported {
			continue
		}

		f.Extends[c.ID.Short()] = c.ParentID.Short()
	}

	return f
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string   // Import path
	Name    string   // Package name
	Classes []TypeID // Named struct types defined in this package
}
