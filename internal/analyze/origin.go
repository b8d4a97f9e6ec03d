package analyze

//go:generate go tool stringer -type=Origin -output=origin_string.go

// Origin tells how a class got its parent.
type Origin int

const (
	OriginRoot     Origin = iota // no embedded struct
	OriginEmbedded               // embedded by value
	OriginPointer                // embedded by pointer

	// OriginTotal is a constant that represents the total number of origins defined
	OriginTotal = int(iota)
)
