package classmap_test

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"class-dispatch/classmap"
	"class-dispatch/zoo"
)

type dispatcher = classmap.MultiFunction[any, string]

func countdown(mf *dispatcher, n int) (string, error) {
	if n <= 0 {
		return "Done", nil
	}

	rest, err := mf.Apply(n - 1)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(n) + " -> " + rest, nil
}

func TestMultiFunction_Countdown(t *testing.T) {
	t.Parallel()

	mf := classmap.NewMulti[any, string]()
	classmap.HandleMulti(mf, countdown)

	got, err := mf.Apply(3)
	require.NoError(t, err)
	assert.Equal(t, "3 -> 2 -> 1 -> Done", got)

	got, err = mf.Apply(10)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "10 ->"))
	assert.True(t, strings.HasSuffix(got, "Done"))
}

func TestMultiFunction_Fibonacci(t *testing.T) {
	t.Parallel()

	mf := classmap.NewMulti[any, int]()
	classmap.HandleMulti(mf, func(mf *classmap.MultiFunction[any, int], n int) (int, error) {
		if n <= 1 {
			return n, nil
		}

		a, err := mf.Apply(n - 1)
		if err != nil {
			return 0, err
		}

		b, err := mf.Apply(n - 2)

		return a + b, err
	})

	for n, want := range []int{0, 1, 1, 2, 3, 5, 8} {
		got, err := mf.Apply(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "fib(%d)", n)
	}
}

func render(mf *dispatcher, v any) (string, error) {
	return mf.Apply(v)
}

func TestMultiFunction_TreeOfMixedClasses(t *testing.T) {
	t.Parallel()

	mf := classmap.NewMulti[any, string]()
	classmap.HandleMulti(mf, func(mf *dispatcher, e *zoo.Element) (string, error) {
		var sb strings.Builder
		sb.WriteString("<" + e.Name + ">")

		for _, child := range e.Children {
			s, err := render(mf, child)
			if err != nil {
				return "", err
			}

			sb.WriteString(s)
		}

		sb.WriteString("</" + e.Name + ">")

		return sb.String(), nil
	})
	classmap.HandlePlain(mf, func(t *zoo.Text) (string, error) { return t.Data, nil })
	classmap.HandlePlain(mf, func(n zoo.Node) (string, error) { return "<!" + n.Name + ">", nil })

	doc := zoo.NewElement("p",
		zoo.NewText("hello "),
		zoo.NewElement("b", zoo.NewText("world")),
		&zoo.Comment{Node: zoo.Node{Name: "note"}},
	)

	got, err := mf.Apply(doc)
	require.NoError(t, err)
	assert.Equal(t, "<p>hello <b>world</b><!note></p>", got)

	_, err = mf.Apply(doc.Children)
	require.ErrorIs(t, err, classmap.ErrNotFound)
}

func TestMultiFunction_Hierarchy(t *testing.T) {
	t.Parallel()

	mf := classmap.NewMulti[zoo.Numeric, string]()
	mf.PutPlain(reflect.TypeFor[zoo.Number](), func(n zoo.Numeric) (string, error) {
		return fmt.Sprintf("Number: %v", n), nil
	})
	classmap.HandlePlain(mf, func(i zoo.Integer) (string, error) { return "Integer: " + i.String(), nil })

	got, err := mf.Apply(zoo.Int(42))
	require.NoError(t, err)
	assert.Equal(t, "Integer: 42", got)

	got, err = mf.Apply(zoo.Double{Value: 3.14})
	require.NoError(t, err)
	assert.Equal(t, "Number: 3.14", got)
}

func TestMultiFunction_DefaultsReturnNewInstances(t *testing.T) {
	t.Parallel()

	base := classmap.NewMulti[zoo.Numeric, string]()
	classmap.HandlePlain(base, func(i zoo.Integer) (string, error) { return "Specific: " + i.String(), nil })

	withValue := base.WithDefault("default")
	withFunc := withValue.WithDefaultFunc(func(n zoo.Numeric) (string, error) {
		return fmt.Sprintf("Default: %T", n), nil
	})

	assert.NotSame(t, base, withValue)
	assert.NotSame(t, withValue, withFunc)

	_, err := base.Apply(zoo.Double{})
	require.ErrorIs(t, err, classmap.ErrNotFound)

	got, err := withValue.Apply(zoo.Double{})
	require.NoError(t, err)
	assert.Equal(t, "default", got)

	got, err = withFunc.Apply(zoo.Long{})
	require.NoError(t, err)
	assert.Equal(t, "Default: zoo.Long", got)

	got, err = withFunc.Apply(zoo.Int(42))
	require.NoError(t, err)
	assert.Equal(t, "Specific: 42", got)
}

func TestMultiFunction_HandlersReceiveTheDispatchingTable(t *testing.T) {
	t.Parallel()

	var seen []*classmap.MultiFunction[zoo.Numeric, string]

	record := func(mf *classmap.MultiFunction[zoo.Numeric, string], _ zoo.Numeric) (string, error) {
		seen = append(seen, mf)
		return "", nil
	}

	base := classmap.NewMulti[zoo.Numeric, string]()
	base.Put(reflect.TypeFor[zoo.Integer](), record)
	withDefault := base.WithDefaultMulti(record)
	cp := withDefault.Copy()

	_, err := base.Apply(zoo.Int(1))
	require.NoError(t, err)
	_, err = withDefault.Apply(zoo.Double{})
	require.NoError(t, err)
	_, err = cp.Apply(zoo.Int(1))
	require.NoError(t, err)

	require.Len(t, seen, 3)
	assert.Same(t, base, seen[0])
	assert.Same(t, withDefault, seen[1])
	assert.Same(t, cp, seen[2])
}

func TestMultiFunction_Errors(t *testing.T) {
	t.Parallel()

	mf := classmap.NewMulti[zoo.Numeric, string]()
	classmap.HandlePlain(mf, func(zoo.Integer) (string, error) { return "", errBoom })
	classmap.HandlePlain[zoo.Double](mf, nil)

	_, err := mf.Apply(zoo.Int(42))
	assert.Equal(t, errBoom, err)

	_, err = mf.Apply(zoo.Double{})
	require.ErrorIs(t, err, classmap.ErrConfiguration)

	_, err = mf.Apply(nil)
	require.ErrorIs(t, err, classmap.ErrNilValue)

	_, err = mf.WithDefaultMulti(nil).Apply(zoo.Long{})
	require.ErrorIs(t, err, classmap.ErrConfiguration)

	assert.True(t, mf.Remove(reflect.TypeFor[zoo.Integer]()))
	_, err = mf.Apply(zoo.Int(42))
	require.ErrorIs(t, err, classmap.ErrNotFound)
}
