package analyze

import (
	"errors"
	"fmt"
	"slices"
)

// ErrCycle is returned when parent links loop through pointer embedding.
var ErrCycle = errors.New("class parents form a cycle")

// Ordered returns every class with parents ahead of their children. Among
// classes that are ready at the same time the smaller full name goes first.
func (g *ClassGraph) Ordered() ([]*ClassInfo, error) {
	sorted := g.Sorted()

	order, err := topoSort(len(sorted), func(i int) []int {
		if p := sorted[i].Parent; p != nil {
			return []int{slices.Index(sorted, p)}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*ClassInfo, 0, len(order))
	for _, i := range order {
		out = append(out, sorted[i])
	}

	return out, nil
}

// topoSort returns the indices 0..n-1 so that deps(i) come before i,
// picking the smallest ready index first.
func topoSort(n int, deps func(i int) []int) ([]int, error) {
	indeg := make([]int, n)
	next := make([][]int, n)

	for i := range n {
		for _, d := range deps(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			next[d] = append(next[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]
		order = append(order, i)

		for _, j := range next[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k, _ := slices.BinarySearch(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(order) != n {
		return nil, ErrCycle
	}

	return order, nil
}
