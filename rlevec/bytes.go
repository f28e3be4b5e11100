package rlevec

import (
	"encoding/binary"
	"errors"
	"io"

	"golang.org/x/xerrors"
)

var (
	// ErrModified is returned by Reader when the underlying vector was
	// mutated after the Reader was created.
	ErrModified = errors.New("rlevec: vector modified during read")
	// ErrDecode wraps every error returned while decoding a serialized
	// vector.
	ErrDecode = errors.New("rlevec: invalid run-length encoding")
)

// Reader streams the elements of a byte vector as an io.Reader. It reads
// runs lazily, so streaming costs O(Len) writes of already-filled buffers
// rather than per-element work.
//
// Like the iterators, a Reader is pinned to the vector state it was created
// from: once the vector is mutated, Read and WriteTo return ErrModified.
type Reader struct {
	v         *Vec[byte]
	gen       uint64
	pos       int
	remaining int
}

// NewReader returns a Reader positioned at the first element of v.
func NewReader(v *Vec[byte]) *Reader {
	r := &Reader{v: v, gen: v.gen}
	if len(v.runs) > 0 {
		r.remaining = v.runs[0].end + 1
	}
	return r
}

// Read fills p with the next elements of the vector and returns io.EOF once
// all elements have been consumed.
func (r *Reader) Read(p []byte) (int, error) {
	if r.gen != r.v.gen {
		return 0, ErrModified
	}
	n := 0
	for n < len(p) {
		if r.remaining == 0 {
			if r.pos >= len(r.v.runs)-1 {
				break
			}
			r.pos++
			r.remaining = r.v.runs[r.pos].end - r.v.runs[r.pos-1].end
		}
		c := r.remaining
		if c > len(p)-n {
			c = len(p) - n
		}
		fill(p[n:n+c], r.v.runs[r.pos].value)
		n += c
		r.remaining -= c
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

const readerChunk = 8 << 10

// WriteTo writes the remaining elements to w, chunked so that even very long
// runs never materialize in full.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	if r.gen != r.v.gen {
		return 0, ErrModified
	}
	buf := make([]byte, readerChunk)
	var total int64
	for {
		if r.remaining == 0 {
			if r.pos >= len(r.v.runs)-1 {
				return total, nil
			}
			r.pos++
			r.remaining = r.v.runs[r.pos].end - r.v.runs[r.pos-1].end
		}
		c := r.remaining
		if c > len(buf) {
			c = len(buf)
		}
		fill(buf[:c], r.v.runs[r.pos].value)
		n, err := w.Write(buf[:c])
		total += int64(n)
		r.remaining -= n
		if err == nil && n < c {
			err = io.ErrShortWrite
		}
		if err != nil {
			return total, err
		}
	}
}

func fill(p []byte, b byte) {
	for i := range p {
		p[i] = b
	}
}

// Bytes serializes a byte vector as a sequence of (value, length) pairs, the
// length encoded as an unsigned varint. The output is proportional to the
// number of runs, not the number of elements.
func Bytes(v *Vec[byte]) []byte {
	buf := make([]byte, 0, len(v.runs)*2)
	prev := -1
	for _, r := range v.runs {
		buf = append(buf, r.value)
		buf = binary.AppendUvarint(buf, uint64(r.end-prev))
		prev = r.end
	}
	return buf
}

// FromBytes decodes data produced by Bytes. Adjacent pairs carrying equal
// values are fused, so the result always holds minimal runs even for input
// that does not. Errors wrap ErrDecode.
func FromBytes(data []byte) (*Vec[byte], error) {
	v := New[byte]()
	for off := 0; off < len(data); {
		value := data[off]
		off++
		length, n := binary.Uvarint(data[off:])
		if n <= 0 {
			return nil, xerrors.Errorf("rlevec: bad run length at offset %d: %w", off, ErrDecode)
		}
		off += n
		if length == 0 {
			return nil, xerrors.Errorf("rlevec: zero-length run at offset %d: %w", off-n, ErrDecode)
		}
		if length > uint64(maxEnd-v.Len()+1) {
			return nil, xerrors.Errorf("rlevec: vector length overflow: %w", ErrDecode)
		}
		v.PushN(value, int(length))
	}
	return v, nil
}
