package rlevec

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshalJSON(t *testing.T) {
	v := NewFromSlice([]int{5, 5, 5, 7, 7})
	got, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	want := `[{"value":5,"length":3},{"value":7,"length":2}]`
	if string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestMarshalJSONEmpty(t *testing.T) {
	got, err := json.Marshal(New[int]())
	if err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	if want := `[]`; string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var v Vec[int]
	data := `[{"value":1,"length":2},{"value":1,"length":1},{"value":4,"length":1}]`
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	if got := v.NumRuns(); got != 2 {
		t.Fatalf("got %d runs, want 2", got)
	}
	if diff := cmp.Diff([]int{1, 1, 1, 4}, v.ToSlice()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	v := NewFromSlice([]string{"a", "a", "b", "c", "c"})
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	w := New[string]()
	if err := json.Unmarshal(data, w); err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	if !w.Equal(v) {
		t.Fatalf("got %v, want %v", w, v)
	}
}

func TestUnmarshalJSONInvalid(t *testing.T) {
	tests := []struct {
		id   int
		data string
	}{
		{1, `[{"value":1,"length":0}]`},
		{2, `[{"value":1,"length":-3}]`},
	}
	for _, tt := range tests {
		v := NewFromSlice([]int{8, 8})
		err := json.Unmarshal([]byte(tt.data), v)
		if !errors.Is(err, ErrDecode) {
			t.Errorf("test %d: got error %v, want ErrDecode", tt.id, err)
		}
		if diff := cmp.Diff([]int{8, 8}, v.ToSlice()); diff != "" {
			t.Errorf("test %d: vector changed by failed decode (-want +got):\n%s", tt.id, diff)
		}
	}
	if err := json.Unmarshal([]byte(`{"value":1}`), New[int]()); err == nil {
		t.Fatal("got error nil, want error for non-array input")
	}
}
