package classmap

import "reflect"

// ClassSet is a set of classes where membership is inherited: once a class
// is added, all of its descendants are contained too.
type ClassSet struct {
	present *ClassMap[bool]
}

// NewSet creates an empty set.
func NewSet(opts ...Option) *ClassSet {
	return &ClassSet{present: New[bool](opts...)}
}

// Add inserts the class K.
func Add[K any](s *ClassSet) bool {
	return s.Add(reflect.TypeFor[K]())
}

// Add inserts the exact class of t and reports whether it was new.
func (s *ClassSet) Add(t reflect.Type) bool {
	_, replaced := s.present.Put(t, true)
	return !replaced
}

// Contains reports whether the class of instance, or one of its ancestors, was added.
func (s *ClassSet) Contains(instance any) bool {
	_, ok := s.present.TryGet(instance)
	return ok
}

// ContainsType reports whether t or one of its ancestors was added.
func (s *ClassSet) ContainsType(t reflect.Type) bool {
	_, ok := s.present.TryGetType(t)
	return ok
}

// Len returns the number of classes added.
func (s *ClassSet) Len() int {
	return s.present.Len()
}

// Types returns the added classes sorted by name.
func (s *ClassSet) Types() []reflect.Type {
	return s.present.Keys()
}

// Copy returns an independent set.
func (s *ClassSet) Copy() *ClassSet {
	return &ClassSet{present: s.present.Copy()}
}
