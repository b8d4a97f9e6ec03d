package classmap_test

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"class-dispatch/classmap"
	"class-dispatch/zoo"
)

func writeTo(prefix string) func(zoo.Numeric, *strings.Builder) error {
	return func(n zoo.Numeric, sb *strings.Builder) error {
		_, err := fmt.Fprintf(sb, "%s: %v", prefix, n)
		return err
	}
}

func TestBiConsumerClassMap_Accept(t *testing.T) {
	t.Parallel()

	m := classmap.NewBiConsumer[zoo.Numeric, *strings.Builder]()
	m.Put(reflect.TypeFor[zoo.Number](), writeTo("Number"))
	classmap.HandleConsumer(m, func(i zoo.Integer, sb *strings.Builder) error {
		sb.WriteString("Integer: " + i.String())
		return nil
	})

	var sb1, sb2 strings.Builder
	require.NoError(t, m.Accept(zoo.Int(42), &sb1))
	require.NoError(t, m.Accept(zoo.Double{Value: 3.14}, &sb2))

	assert.Equal(t, "Integer: 42", sb1.String())
	assert.Equal(t, "Number: 3.14", sb2.String())
}

func TestBiConsumerClassMap_IgnoreNotFound(t *testing.T) {
	t.Parallel()

	strict := classmap.NewBiConsumer[zoo.Numeric, *strings.Builder]()
	lenient := classmap.NewBiConsumerInstance[zoo.Numeric, *strings.Builder](true)
	strict.Put(reflect.TypeFor[zoo.Integer](), writeTo("Strict"))
	lenient.Put(reflect.TypeFor[zoo.Integer](), writeTo("Lenient"))

	assert.False(t, strict.IgnoresNotFound())
	assert.True(t, lenient.IgnoresNotFound())

	var sb1, sb2, sb3, sb4 strings.Builder
	require.NoError(t, strict.Accept(zoo.Int(42), &sb1))
	require.NoError(t, lenient.Accept(zoo.Int(42), &sb2))
	require.ErrorIs(t, strict.Accept(zoo.Double{Value: 3.14}, &sb3), classmap.ErrNotFound)
	require.NoError(t, lenient.Accept(zoo.Double{Value: 3.14}, &sb4))

	assert.Equal(t, "Strict: 42", sb1.String())
	assert.Equal(t, "Lenient: 42", sb2.String())
	assert.Empty(t, sb3.String())
	assert.Empty(t, sb4.String())

	assert.True(t, lenient.Copy().IgnoresNotFound(), "the flag survives copies")
	require.ErrorIs(t, lenient.Accept(nil, &sb4), classmap.ErrNilValue, "nil values are never ignored")
}

func TestBiConsumerClassMap_DefaultBeatsIgnore(t *testing.T) {
	t.Parallel()

	m := classmap.NewBiConsumerInstance[zoo.Numeric, *strings.Builder](true).
		WithDefaultFunc(writeTo("Default"))

	var sb strings.Builder
	require.NoError(t, m.Accept(zoo.Long{Value: 42}, &sb))
	assert.Equal(t, "Default: 42", sb.String())
}

func TestBiConsumerClassMap_SideEffectsAndErrors(t *testing.T) {
	t.Parallel()

	var seen []string

	m := classmap.NewBiConsumer[any, []string]()
	classmap.HandleConsumer(m, func(s string, extra []string) error {
		seen = append(seen, strings.ToUpper(s))
		seen = append(seen, extra...)

		return nil
	})
	classmap.HandleConsumer(m, func(*zoo.Exception, []string) error { return errBoom })

	require.NoError(t, m.Accept("hello", []string{"tail"}))
	assert.Equal(t, []string{"HELLO", "tail"}, seen)

	assert.Equal(t, errBoom, m.Accept(zoo.NewIllegalArgument("x"), nil))

	m.Put(reflect.TypeFor[int](), nil)
	require.ErrorIs(t, m.Accept(1, nil), classmap.ErrConfiguration)
}
