package rlevec

import (
	"fmt"
	"sort"
)

// span holds the logical boundaries of a single run, both ends inclusive.
type span struct {
	start int
	end   int
}

// length returns the number of elements covered by the span.
func (s span) length() int {
	return s.end - s.start + 1
}

// At returns the value stored at logical index i, located with a binary
// search over the cumulative run ends. O(log NumRuns). At panics if i is out
// of range.
func (v *Vec[T]) At(i int) T {
	return v.runs[v.runIndex(i)].value
}

// runIndex returns the position of the run owning logical index i: the first
// run whose cumulative end is at least i. It panics if i is out of range.
func (v *Vec[T]) runIndex(i int) int {
	if i < 0 || len(v.runs) == 0 || i > v.runs[len(v.runs)-1].end {
		panic(fmt.Sprintf("rlevec: index out of range [%d] with length %d", i, v.Len()))
	}
	return sort.Search(len(v.runs), func(p int) bool {
		return v.runs[p].end >= i
	})
}

// runSpan returns the logical span covered by the run at position p.
func (v *Vec[T]) runSpan(p int) span {
	if p == 0 {
		return span{start: 0, end: v.runs[0].end}
	}
	return span{start: v.runs[p-1].end + 1, end: v.runs[p].end}
}

// indexInfo resolves logical index i to the position of its owning run and
// the span that run covers. Every mutating operation is built on this
// primitive.
func (v *Vec[T]) indexInfo(i int) (int, span) {
	p := v.runIndex(i)
	return p, v.runSpan(p)
}

// Starts returns the 0-based start offsets of all runs. O(NumRuns).
func (v *Vec[T]) Starts() []int {
	if len(v.runs) == 0 {
		return nil
	}
	starts := make([]int, len(v.runs))
	for p := 1; p < len(v.runs); p++ {
		starts[p] = v.runs[p-1].end + 1
	}
	return starts
}

// Ends returns the 0-based end offsets of all runs. O(NumRuns).
func (v *Vec[T]) Ends() []int {
	if len(v.runs) == 0 {
		return nil
	}
	ends := make([]int, len(v.runs))
	for p, r := range v.runs {
		ends[p] = r.end
	}
	return ends
}
