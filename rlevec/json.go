package rlevec

import (
	"encoding/json"

	"golang.org/x/xerrors"
)

// MarshalJSON implements json.Marshaler. The vector is encoded as its run
// sequence, e.g. [{"value":5,"length":3},{"value":7,"length":1}].
func (v *Vec[T]) MarshalJSON() ([]byte, error) {
	runs := make([]Run[T], 0, len(v.runs))
	it := v.Runs()
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		runs = append(runs, r)
	}
	return json.Marshal(runs)
}

// UnmarshalJSON implements json.Unmarshaler, accepting the run sequence
// produced by MarshalJSON. Adjacent runs carrying equal values are fused.
// Runs with a non-positive length are rejected with an error wrapping
// ErrDecode, and a failed decode leaves the vector unchanged.
func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	var runs []Run[T]
	if err := json.Unmarshal(data, &runs); err != nil {
		return err
	}
	var w Vec[T]
	for i, r := range runs {
		if r.Length < 1 {
			return xerrors.Errorf("rlevec: run %d: non-positive length %d: %w", i, r.Length, ErrDecode)
		}
		if r.Length > maxEnd-w.Len()+1 {
			return xerrors.Errorf("rlevec: vector length overflow: %w", ErrDecode)
		}
		w.PushN(r.Value, r.Length)
	}
	v.gen++
	v.runs = w.runs
	return nil
}
