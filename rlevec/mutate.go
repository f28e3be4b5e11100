package rlevec

// Set replaces the value at logical index i. Setting a value equal to the
// stored one returns without touching the vector, O(log NumRuns). Otherwise
// the owning run may have to be split or fused with a neighbour, shifting
// run descriptors, which makes the worst case O(log NumRuns + NumRuns). No
// two adjacent runs hold equal values when Set returns. Set panics if i is
// out of range.
func (v *Vec[T]) Set(i int, x T) {
	p, s := v.indexInfo(i)
	if v.runs[p].value == x {
		return
	}
	v.gen++

	// A run of length one disappears and may fuse its neighbours.
	if s.length() == 1 {
		if p > 0 && v.runs[p-1].value == x {
			v.runs[p-1].end++
			v.removeRun(p)
			p--
		}
		if p < len(v.runs)-1 && v.runs[p+1].value == x {
			// The next run already starts with x: dropping the
			// descriptor at p folds everything it covered into the
			// next run.
			v.removeRun(p)
			return
		}
		v.runs[p].value = x
		return
	}

	switch i {
	case s.start:
		if p > 0 && v.runs[p-1].value == x {
			v.runs[p-1].end++
			return
		}
		v.insertRun(p, run[T]{value: x, end: s.start})
	case s.end:
		v.runs[p].end--
		if p+1 < len(v.runs) && v.runs[p+1].value == x {
			// The shrunk run hands the element to the next run.
			return
		}
		v.insertRun(p+1, run[T]{value: x, end: s.end})
	default:
		// Split the run in three: head keeps the original value, a
		// length-one run carries x, the tail resumes the original
		// value up to the old end.
		old := v.runs[p].value
		v.runs[p].end = i - 1
		v.insertRun(p+1, run[T]{value: x, end: i})
		v.insertRun(p+2, run[T]{value: old, end: s.end})
	}
}

// Insert inserts x at logical index i, shifting every element at and after i
// one position up. Inserting at i == Len() is equivalent to Push. The
// cumulative ends of every run from the owning one onward are renumbered, so
// Insert is O(log NumRuns + NumRuns). Insert panics if i is greater than
// Len() or if the resulting length overflows the int offset type.
func (v *Vec[T]) Insert(i int, x T) {
	if i == v.Len() {
		v.Push(x)
		return
	}
	p, s := v.indexInfo(i)
	if v.runs[len(v.runs)-1].end == maxEnd {
		panic("rlevec: vector length overflow")
	}
	v.gen++

	// Every element from the owning run onward moves up one position.
	for q := p; q < len(v.runs); q++ {
		v.runs[q].end++
	}

	// The shift grew the owning run by one: if it already holds x the
	// insertion is absorbed.
	if v.runs[p].value == x {
		return
	}

	if i == s.start {
		if p > 0 && v.runs[p-1].value == x {
			v.runs[p-1].end++
			return
		}
		v.insertRun(p, run[T]{value: x, end: i})
		return
	}

	// Interior of the run, including its last position: split around a new
	// length-one run, the tail carrying the original value with its end
	// already shifted.
	old := v.runs[p].value
	v.runs[p].end = i - 1
	v.insertRun(p+1, run[T]{value: x, end: i})
	v.insertRun(p+2, run[T]{value: old, end: s.end + 1})
}

// Remove removes the element at logical index i, shifting every element
// after it one position down, and returns the removed value. A run of length
// one disappears entirely, fusing its neighbours when they hold equal
// values. O(log NumRuns + NumRuns). Remove panics if i is out of range.
func (v *Vec[T]) Remove(i int) T {
	p, s := v.indexInfo(i)
	v.gen++

	// Every element from the owning run onward moves down one position.
	for q := p; q < len(v.runs); q++ {
		v.runs[q].end--
	}

	if s.length() > 1 {
		// The owning run simply shrank.
		return v.runs[p].value
	}

	x := v.runs[p].value
	v.removeRun(p)
	// Deleting a descriptor can make two equal-valued runs adjacent.
	if p > 0 && p < len(v.runs) && v.runs[p-1].value == v.runs[p].value {
		v.runs[p-1].end = v.runs[p].end
		v.removeRun(p)
	}
	return x
}

// insertRun inserts r at position p in the run sequence, shifting
// subsequent descriptors up.
func (v *Vec[T]) insertRun(p int, r run[T]) {
	v.runs = append(v.runs, run[T]{})
	copy(v.runs[p+1:], v.runs[p:])
	v.runs[p] = r
}

// removeRun deletes the descriptor at position p, shifting subsequent
// descriptors down.
func (v *Vec[T]) removeRun(p int) {
	v.runs = append(v.runs[:p], v.runs[p+1:]...)
}
