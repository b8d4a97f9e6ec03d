package match

import (
	"strings"
	"unicode"
)

// Normalize folds a type name for fuzzy comparison: lower case, with
// '_', '-' and spaces removed. Package qualifiers are kept.
func Normalize(name string) string {
	var b strings.Builder

	b.Grow(len(name))

	for _, r := range name {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// baseName drops the package qualifier of a normalized name.
func baseName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}

	return name
}
