package rlevec

import (
	"fmt"
	"math"
	"strings"
)

// maxEnd is the largest cumulative end offset a run may carry. Keeping the
// last offset below math.MaxInt guarantees Len, which reports end+1, cannot
// wrap.
const maxEnd = math.MaxInt - 1

// A Run represents a stretch of identical values expressed as the value and
// the number of consecutive repeats.
type Run[T comparable] struct {
	Value  T   `json:"value"`
	Length int `json:"length"`
}

// run is the stored representation of a stretch of identical values. end is
// the 0-based logical index of the last element belonging to the run,
// cumulative over the whole vector, so the slice of ends is strictly
// increasing.
type run[T comparable] struct {
	value T
	end   int
}

// A Vec represents a sequence of values compressed as runs of consecutive
// equal values. The zero value is an empty vector ready to use.
//
// A Vec must not be used from multiple goroutines simultaneously.
type Vec[T comparable] struct {
	runs []run[T]

	// gen increments on every mutation and invalidates outstanding
	// iterators and readers.
	gen uint64
}

// New creates and initializes a new empty Vec.
func New[T comparable]() *Vec[T] {
	return &Vec[T]{}
}

// NewWithCapacity creates a new empty Vec with storage preallocated for n
// runs. Choosing n requires knowledge about the composition of the data that
// is going to be stored, not about its raw size.
func NewWithCapacity[T comparable](n int) *Vec[T] {
	return &Vec[T]{runs: make([]run[T], 0, n)}
}

// NewFromSlice creates a new Vec holding the values of s, producing the
// minimal run sequence for it. O(len(s)).
func NewFromSlice[T comparable](s []T) *Vec[T] {
	v := New[T]()
	for _, x := range s {
		v.Push(x)
	}
	return v
}

// NewFromRuns creates a new Vec from an ordered sequence of runs. The input
// is not assumed minimal: adjacent runs holding equal values are merged and
// runs of length zero are dropped. NewFromRuns panics if a run has a
// negative length.
func NewFromRuns[T comparable](runs []Run[T]) *Vec[T] {
	v := NewWithCapacity[T](len(runs))
	for _, r := range runs {
		v.PushN(r.Value, r.Length)
	}
	return v
}

// Push appends a single value to the vector. If the value equals the value
// of the last run that run is extended, otherwise a new run is started.
// O(1) amortized. Push panics if the resulting length overflows the int
// offset type.
func (v *Vec[T]) Push(x T) {
	v.gen++
	end := 0
	if n := len(v.runs); n > 0 {
		last := &v.runs[n-1]
		if last.end == maxEnd {
			panic("rlevec: vector length overflow")
		}
		if last.value == x {
			last.end++
			return
		}
		end = last.end + 1
	}
	v.runs = append(v.runs, run[T]{value: x, end: end})
}

// PushN appends n copies of x to the vector in one step, following the same
// merge-or-append rule as Push. Appending zero copies is a no-op. PushN
// panics if n is negative or if the resulting length overflows the int
// offset type.
func (v *Vec[T]) PushN(x T, n int) {
	if n < 0 {
		panic("rlevec: negative repeat count")
	}
	if n == 0 {
		return
	}
	v.gen++
	end := n - 1
	if ln := len(v.runs); ln > 0 {
		last := &v.runs[ln-1]
		if last.end > maxEnd-n {
			panic("rlevec: vector length overflow")
		}
		if last.value == x {
			last.end += n
			return
		}
		end = last.end + n
	}
	v.runs = append(v.runs, run[T]{value: x, end: end})
}

// Len returns the number of elements that can be indexed in the vector. O(1).
func (v *Vec[T]) Len() int {
	if len(v.runs) == 0 {
		return 0
	}
	return v.runs[len(v.runs)-1].end + 1
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vec[T]) IsEmpty() bool {
	return len(v.runs) == 0
}

// NumRuns returns the number of runs stored in the vector.
func (v *Vec[T]) NumRuns() int {
	return len(v.runs)
}

// Last returns the value of the last element of the vector. The second
// return value is false if the vector is empty.
func (v *Vec[T]) Last() (T, bool) {
	if len(v.runs) == 0 {
		var zero T
		return zero, false
	}
	return v.runs[len(v.runs)-1].value, true
}

// LastRun returns the last run of the vector. The second return value is
// false if the vector is empty.
func (v *Vec[T]) LastRun() (Run[T], bool) {
	n := len(v.runs)
	if n == 0 {
		return Run[T]{}, false
	}
	length := v.runs[n-1].end + 1
	if n > 1 {
		length = v.runs[n-1].end - v.runs[n-2].end
	}
	return Run[T]{Value: v.runs[n-1].value, Length: length}, true
}

// Clear removes all elements from the vector, keeping the allocated run
// storage for reuse.
func (v *Vec[T]) Clear() {
	v.gen++
	v.runs = v.runs[:0]
}

// Clone returns an independent copy of the vector. O(NumRuns).
func (v *Vec[T]) Clone() *Vec[T] {
	w := &Vec[T]{runs: make([]run[T], len(v.runs))}
	copy(w.runs, v.runs)
	return w
}

// ToSlice materializes the full logical sequence as a plain slice. O(n) in
// the logical length.
func (v *Vec[T]) ToSlice() []T {
	s := make([]T, v.Len())
	i := 0
	for _, r := range v.runs {
		for ; i <= r.end; i++ {
			s[i] = r.value
		}
	}
	return s
}

// Equal reports whether v and other hold the same logical sequence with the
// same run boundaries.
func (v *Vec[T]) Equal(other *Vec[T]) bool {
	if len(v.runs) != len(other.runs) {
		return false
	}
	for i, r := range v.runs {
		if other.runs[i] != r {
			return false
		}
	}
	return true
}

// String returns a compact rendering of the runs for debugging, showing each
// run as its closed logical span and value.
func (v *Vec[T]) String() string {
	if len(v.runs) == 0 {
		return "Vec{}"
	}
	var b strings.Builder
	b.WriteString("Vec{")
	start := 0
	for i, r := range v.runs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "[%d,%d]=%v", start, r.end, r.value)
		start = r.end + 1
	}
	b.WriteByte('}')
	return b.String()
}
