package lineage

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"class-dispatch/internal/match"
	"class-dispatch/utils"
)

// Catalog maps names used in lineage files to Go types.
type Catalog struct {
	types map[string]reflect.Type
}

// NewCatalog creates a catalog holding types under their default names.
func NewCatalog(types ...reflect.Type) (*Catalog, error) {
	c := &Catalog{types: make(map[string]reflect.Type, len(types))}
	for _, t := range types {
		if err := c.AddType(t); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Add registers t under name. Registering a different type under a taken
// name is an error.
func (c *Catalog) Add(name string, t reflect.Type) error {
	t = Normalize(t)
	if name == "" || t == nil {
		return fmt.Errorf("catalog entry needs a name and a type (got %q, %v)", name, t)
	}

	if prev, ok := c.types[name]; ok && prev != t {
		return fmt.Errorf("catalog name %q already bound to %s", name, prev)
	}

	if c.types == nil {
		c.types = make(map[string]reflect.Type)
	}

	c.types[name] = t

	return nil
}

// AddType registers t under its reflect name, e.g. "zoo.Integer".
func (c *Catalog) AddType(t reflect.Type) error {
	t = Normalize(t)
	if t == nil {
		return fmt.Errorf("catalog entry needs a type")
	}

	return c.Add(t.String(), t)
}

// Lookup resolves a type name like:
// - "zoo.Integer" (short, as registered)
// - "class-dispatch/zoo.Integer" (full import path)
// - "Integer" (name only, best effort).
func (c *Catalog) Lookup(name string) (reflect.Type, bool) {
	if t, ok := c.types[name]; ok {
		return t, true
	}

	if !strings.Contains(name, ".") {
		for _, key := range c.Names() {
			if t := c.types[key]; t.Name() == name {
				return t, true
			}
		}

		return nil, false
	}

	lastDot := strings.LastIndex(name, ".")
	pkgPath, typeName := name[:lastDot], name[lastDot+1:]

	for _, key := range c.Names() {
		t := c.types[key]
		if t.Name() != typeName {
			continue
		}

		if t.PkgPath() == pkgPath || strings.HasSuffix(t.PkgPath(), "/"+pkgPath) {
			return t, true
		}

		if pkg, _ := utils.Unpack2(strings.SplitN(key, ".", 2)); pkg == pkgPath {
			return t, true
		}
	}

	return nil, false
}

// Suggest returns the registered name closest to a name Lookup missed.
func (c *Catalog) Suggest(name string) (string, bool) {
	return match.Closest(name, c.Names(), match.DefaultThreshold)
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
