package lineage

//go:generate go tool stringer -type=Source -output=source_string.go

// Source tells where the parent of a class comes from.
type Source int

const (
	SourceNone     Source = iota // root of its chain
	SourceDeclared               // Lineage.Declare
	SourceEmbedded               // first embedded struct field

	// SourceTotal is a constant that represents the total number of sources defined
	SourceTotal = int(iota)
)
