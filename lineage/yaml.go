package lineage

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"class-dispatch/internal/diagnostic"
)

// CurrentVersion is the lineage file format version written by Marshal.
const CurrentVersion = "1"

// File is the YAML form of a set of declarations:
//
//	version: "1"
//	extends:
//	  zoo.Integer: zoo.Number
//	  zoo.Double: zoo.Number
type File struct {
	Version string            `yaml:"version"`
	Extends map[string]string `yaml:"extends"`
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse lineage YAML: %w", err)
	}

	if f.Version == "" {
		f.Version = CurrentVersion
	}

	return &f, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// LoadFile reads a lineage file from path and declares its entries on a new Lineage.
func LoadFile(path string, cat *Catalog) (*Lineage, diagnostic.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("failed to read lineage file %s: %w", path, err)
	}

	return Load(data, cat)
}

// Load parses data and declares its entries on a new Lineage.
// Entries naming unknown types or rejected by Declare are reported as error
// diagnostics and skipped; the remaining entries are still declared.
func Load(data []byte, cat *Catalog) (*Lineage, diagnostic.Diagnostics, error) {
	if cat == nil {
		return nil, diagnostic.Diagnostics{}, errors.New("lineage catalog is required")
	}

	f, err := Parse(data)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	l := New()

	return l, f.Apply(l, cat), nil
}

// Apply declares the entries of f on l in sorted order of the sub-class name.
func (f *File) Apply(l *Lineage, cat *Catalog) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if f.Version != CurrentVersion {
		diags.AddWarning("unsupported_version",
			fmt.Sprintf("lineage file version %q, reading as %q", f.Version, CurrentVersion), "", "")
	}

	subs := make([]string, 0, len(f.Extends))
	for sub := range f.Extends {
		subs = append(subs, sub)
	}

	slices.Sort(subs)

	for _, subName := range subs {
		superName := f.Extends[subName]
		pair := subName + " -> " + superName

		sub, ok := cat.Lookup(subName)
		if !ok {
			diags.AddError("unknown_type", unknownType(cat, subName), pair, "")
			continue
		}

		super, ok := cat.Lookup(superName)
		if !ok {
			diags.AddError("unknown_type", unknownType(cat, superName), pair, "")
			continue
		}

		if err := l.Declare(sub, super); err != nil {
			diags.AddError("invalid_declaration", err.Error(), pair, "")
			continue
		}

		diags.AddInfo("declared", fmt.Sprintf("%s extends %s", sub, super), pair, "")
	}

	return diags
}

func unknownType(cat *Catalog, name string) string {
	msg := fmt.Sprintf("type %q is not in the catalog", name)
	if guess, ok := cat.Suggest(name); ok {
		msg += fmt.Sprintf(" (did you mean %q?)", guess)
	}

	return msg
}
