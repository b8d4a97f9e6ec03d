package classmap_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"class-dispatch/classmap"
	"class-dispatch/zoo"
)

func TestClassSet_AncestorImpliesMembership(t *testing.T) {
	t.Parallel()

	s := classmap.NewSet()
	assert.True(t, classmap.Add[zoo.Number](s))

	assert.True(t, s.ContainsType(reflect.TypeFor[zoo.Number]()))
	assert.True(t, s.ContainsType(reflect.TypeFor[zoo.Integer]()))
	assert.True(t, s.Contains(zoo.Short{}))
	assert.False(t, s.ContainsType(reflect.TypeFor[string]()))
	assert.False(t, s.Contains("text"))
	assert.False(t, s.Contains(nil))
}

func TestClassSet_Add(t *testing.T) {
	t.Parallel()

	s := classmap.NewSet()
	assert.True(t, s.Add(reflect.TypeFor[zoo.Integer]()))
	assert.False(t, s.Add(reflect.TypeFor[*zoo.Integer]()), "pointer and value share the class")
	assert.True(t, s.Contains(zoo.Int(1)))
	assert.False(t, s.Contains(zoo.Long{}))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []reflect.Type{reflect.TypeFor[zoo.Integer]()}, s.Types())
}

func TestClassSet_InterfacesNeverMatch(t *testing.T) {
	t.Parallel()

	s := classmap.NewSet()
	classmap.Add[zoo.Collection](s)

	assert.False(t, s.Contains(&zoo.ArrayList{}))
	assert.True(t, s.ContainsType(reflect.TypeFor[zoo.Collection]()))
}

func TestClassSet_Copy(t *testing.T) {
	t.Parallel()

	s := classmap.NewSet()
	classmap.Add[zoo.Integer](s)

	cp := s.Copy()
	classmap.Add[zoo.Double](s)

	assert.True(t, cp.Contains(zoo.Int(1)))
	assert.False(t, cp.Contains(zoo.Double{}))
	assert.True(t, s.Contains(zoo.Double{}))
}
