package rlevec

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Iter iterates over the elements of a Vec in logical order. It reads runs
// lazily, so a full pass costs O(Len) regardless of how the elements are
// grouped, and Nth can skip whole runs without visiting their elements.
//
// An Iter is only valid for the vector state it was created from: any
// mutation of the vector invalidates it, and the next call on an invalidated
// iterator panics.
type Iter[T comparable] struct {
	v         *Vec[T]
	gen       uint64
	pos       int
	remaining int
}

// Iter returns an iterator positioned before the first element.
func (v *Vec[T]) Iter() *Iter[T] {
	it := &Iter[T]{v: v, gen: v.gen}
	if len(v.runs) > 0 {
		it.remaining = v.runs[0].end + 1
	}
	return it
}

func (it *Iter[T]) check() {
	if it.gen != it.v.gen {
		panic("rlevec: vector modified during iteration")
	}
}

// Next returns the next element, or false when the iterator is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	it.check()
	if it.remaining == 0 {
		if it.pos >= len(it.v.runs)-1 {
			var zero T
			return zero, false
		}
		it.pos++
		it.remaining = it.v.runs[it.pos].end - it.v.runs[it.pos-1].end
	}
	it.remaining--
	return it.v.runs[it.pos].value, true
}

// Nth skips n elements and returns the one after them, so Nth(0) is
// equivalent to Next. When the skip leaves the current run the target is
// located by binary search over the remaining runs, costing O(log NumRuns)
// instead of O(n). Returns false and exhausts the iterator when fewer than
// n+1 elements remain. Nth panics if n is negative.
func (it *Iter[T]) Nth(n int) (T, bool) {
	it.check()
	if n < 0 {
		panic("rlevec: negative skip count")
	}
	if n < it.remaining {
		it.remaining -= n + 1
		return it.v.runs[it.pos].value, true
	}
	runs := it.v.runs
	var zero T
	if len(runs) == 0 {
		return zero, false
	}
	next := runs[it.pos].end - it.remaining + 1
	if last := runs[len(runs)-1].end; n > last-next {
		it.pos = len(runs) - 1
		it.remaining = 0
		return zero, false
	}
	target := next + n
	p := it.pos + sort.Search(len(runs)-it.pos, func(q int) bool {
		return runs[it.pos+q].end >= target
	})
	it.pos = p
	it.remaining = runs[p].end - target
	return runs[p].value, true
}

// RunIter iterates over the runs of a Vec in logical order, yielding each as
// a Run with its materialized length. Like Iter it is invalidated by any
// mutation of the vector, and the next call on an invalidated iterator
// panics.
type RunIter[T comparable] struct {
	v   *Vec[T]
	gen uint64
	pos int
}

// Runs returns a run iterator positioned before the first run.
func (v *Vec[T]) Runs() *RunIter[T] {
	return &RunIter[T]{v: v, gen: v.gen}
}

func (it *RunIter[T]) check() {
	if it.gen != it.v.gen {
		panic("rlevec: vector modified during iteration")
	}
}

// Next returns the next run, or false when the iterator is exhausted.
func (it *RunIter[T]) Next() (Run[T], bool) {
	it.check()
	if it.pos >= len(it.v.runs) {
		return Run[T]{}, false
	}
	r := Run[T]{
		Value:  it.v.runs[it.pos].value,
		Length: it.v.runSpan(it.pos).length(),
	}
	it.pos++
	return r, true
}

// IterMax consumes the iterator and returns the largest remaining element,
// or false when none remain. Only one value per run is inspected, so the
// cost is O(NumRuns) rather than O(Len).
func IterMax[T constraints.Ordered](it *Iter[T]) (T, bool) {
	it.check()
	runs := it.v.runs
	var best T
	found := false
	if it.remaining > 0 {
		best, found = runs[it.pos].value, true
	}
	for q := it.pos + 1; q < len(runs); q++ {
		if !found || runs[q].value > best {
			best, found = runs[q].value, true
		}
	}
	if len(runs) > 0 {
		it.pos = len(runs) - 1
	}
	it.remaining = 0
	return best, found
}

// IterMin consumes the iterator and returns the smallest remaining element,
// or false when none remain. Like IterMax it inspects one value per run.
func IterMin[T constraints.Ordered](it *Iter[T]) (T, bool) {
	it.check()
	runs := it.v.runs
	var best T
	found := false
	if it.remaining > 0 {
		best, found = runs[it.pos].value, true
	}
	for q := it.pos + 1; q < len(runs); q++ {
		if !found || runs[q].value < best {
			best, found = runs[q].value, true
		}
	}
	if len(runs) > 0 {
		it.pos = len(runs) - 1
	}
	it.remaining = 0
	return best, found
}
