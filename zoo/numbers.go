// Package zoo holds small type families used by tests, examples and the
// chains command. Each family models a class tree through struct embedding.
package zoo

import "strconv"

// Numeric is implemented by every concrete number.
type Numeric interface {
	Float() float64
}

// Number is the root of the number family. It carries no value.
type Number struct{}

type Integer struct {
	Number
	Value int
}

type Long struct {
	Number
	Value int64
}

type Double struct {
	Number
	Value float64
}

// Short narrows Integer, giving the family a three level chain.
type Short struct {
	Integer
}

func (i Integer) Float() float64 { return float64(i.Value) }
func (l Long) Float() float64    { return float64(l.Value) }
func (d Double) Float() float64  { return d.Value }

func (i Integer) String() string { return strconv.Itoa(i.Value) }
func (l Long) String() string    { return strconv.FormatInt(l.Value, 10) }
func (d Double) String() string  { return strconv.FormatFloat(d.Value, 'g', -1, 64) }

// Int builds an Integer.
func Int(v int) Integer { return Integer{Value: v} }
