package analyze

import (
	"errors"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"class-dispatch/internal/diagnostic"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// ErrNoPatterns is returned when LoadPackages is called without patterns.
var ErrNoPatterns = errors.New("no package patterns given")

// Analyzer loads Go packages and builds a class graph.
type Analyzer struct {
	graph *ClassGraph
	diags diagnostic.Diagnostics
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewClassGraph(),
	}
}

// LoadPackages loads the specified packages and adds their classes to the graph.
// Patterns are standard Go package patterns (e.g., "./zoo", "class-dispatch/zoo").
func (a *Analyzer) LoadPackages(patterns ...string) (*ClassGraph, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	a.link()

	return a.graph, nil
}

// Graph returns the current class graph.
func (a *Analyzer) Graph() *ClassGraph {
	return a.graph
}

// Diagnostics returns the findings collected so far.
func (a *Analyzer) Diagnostics() diagnostic.Diagnostics {
	return a.diags
}

// Chain returns the chain of the class named by pkgPath and typeName.
func (a *Analyzer) Chain(pkgPath, typeName string) ([]TypeID, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}

	c := a.graph.GetClass(id)
	if c == nil {
		return nil, fmt.Errorf("class %s not found", id)
	}

	return c.Chain(), nil
}

// processPackage extracts the named struct types of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}

		if named.TypeParams().Len() > 0 {
			a.diags.AddInfo("generic_skipped",
				"generic types have no single class", id.Short(), pkg.PkgPath)

			continue
		}

		info := &ClassInfo{
			ID:       id,
			Exported: typeName.Exported(),
		}

		a.analyzeEmbedded(st, info, pkg.PkgPath)

		a.graph.Classes[id] = info
		pkgInfo.Classes = append(pkgInfo.Classes, id)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// analyzeEmbedded finds the parent of info among the embedded fields of st.
func (a *Analyzer) analyzeEmbedded(st *types.Struct, info *ClassInfo, location string) {
	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Embedded() {
			continue
		}

		ft := types.Unalias(field.Type())

		origin := OriginEmbedded
		if ptr, ok := ft.(*types.Pointer); ok {
			ft = types.Unalias(ptr.Elem())
			origin = OriginPointer
		}

		named, ok := ft.(*types.Named)
		if !ok {
			continue
		}

		id := typeID(named)

		switch named.Underlying().(type) {
		case *types.Interface:
			info.Interfaces = append(info.Interfaces, id)
			a.diags.AddInfo("embedded_interface",
				fmt.Sprintf("embedded interface %s is not a parent", id.Short()), info.ID.Short(), location)

			continue
		case *types.Struct:
		default:
			continue
		}

		if id == info.ID || !info.ParentID.IsZero() {
			continue
		}

		info.ParentID, info.Origin = id, origin
	}
}

// link connects parents found in the loaded packages.
func (a *Analyzer) link() {
	for _, c := range a.graph.Sorted() {
		if c.IsRoot() {
			continue
		}

		c.Parent = a.graph.GetClass(c.ParentID)
		if c.Parent == nil {
			a.diags.AddWarning("external_parent",
				fmt.Sprintf("parent %s is outside the loaded packages", c.ParentID), c.ID.Short(), c.ID.PkgPath)
		}
	}
}

func typeID(named *types.Named) TypeID {
	obj := named.Obj()
	if obj.Pkg() == nil {
		return TypeID{Name: obj.Name()}
	}

	return TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}
}
