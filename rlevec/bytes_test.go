package rlevec

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testByteVec() *Vec[byte] {
	v := New[byte]()
	v.PushN('a', 3)
	v.PushN('b', 2)
	v.Push('c')
	return v
}

func TestReaderReadAll(t *testing.T) {
	data, err := io.ReadAll(NewReader(testByteVec()))
	require.NoError(t, err)
	assert.Equal(t, []byte("aaabbc"), data)
}

func TestReaderChunks(t *testing.T) {
	r := NewReader(testByteVec())
	buf := make([]byte, 4)

	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte("aaab"), buf[:n])

	n, err = r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte("bc"), buf[:n])

	n, err = r.Read(buf)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderEmpty(t *testing.T) {
	n, err := NewReader(New[byte]()).Read(make([]byte, 8))
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)

	var sink bytes.Buffer
	m, err := NewReader(New[byte]()).WriteTo(&sink)
	require.NoError(t, err)
	assert.Zero(t, m)
}

func TestReaderModified(t *testing.T) {
	v := testByteVec()
	r := NewReader(v)
	v.Push('d')
	_, err := r.Read(make([]byte, 2))
	assert.ErrorIs(t, err, ErrModified)
	_, err = r.WriteTo(io.Discard)
	assert.ErrorIs(t, err, ErrModified)
}

func TestReaderWriteTo(t *testing.T) {
	v := New[byte]()
	v.PushN('x', 3*readerChunk+100)
	v.PushN('y', 10)
	var buf bytes.Buffer
	n, err := NewReader(v).WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(v.Len()), n)
	want := append(bytes.Repeat([]byte{'x'}, 3*readerChunk+100), bytes.Repeat([]byte{'y'}, 10)...)
	assert.Equal(t, want, buf.Bytes())
}

func TestReaderReadThenWriteTo(t *testing.T) {
	r := NewReader(testByteVec())
	head := make([]byte, 2)
	_, err := io.ReadFull(r, head)
	require.NoError(t, err)
	assert.Equal(t, []byte("aa"), head)

	var rest bytes.Buffer
	n, err := r.WriteTo(&rest)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, "abbc", rest.String())
}

// shortWriter accepts at most limit bytes per call without reporting an
// error.
type shortWriter struct {
	limit int
}

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		return w.limit, nil
	}
	return len(p), nil
}

func TestReaderShortWrite(t *testing.T) {
	v := New[byte]()
	v.PushN('a', 100)
	n, err := NewReader(v).WriteTo(&shortWriter{limit: 7})
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, int64(7), n)
}

func TestBytesEncoding(t *testing.T) {
	v := New[byte]()
	v.PushN(0x61, 2)
	v.Push(0x62)
	assert.Equal(t, []byte{0x61, 0x02, 0x62, 0x01}, Bytes(v))
	assert.Empty(t, Bytes(New[byte]()))
}

func TestBytesRoundTrip(t *testing.T) {
	v := New[byte]()
	v.PushN('a', 300)
	v.Push('b')
	v.PushN(0, 5)
	w, err := FromBytes(Bytes(v))
	require.NoError(t, err)
	assert.True(t, v.Equal(w), "got %v, want %v", w, v)
}

func TestFromBytesEmpty(t *testing.T) {
	v, err := FromBytes(nil)
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())
}

func TestFromBytesMergesRuns(t *testing.T) {
	v, err := FromBytes([]byte{'a', 2, 'a', 3})
	require.NoError(t, err)
	assert.Equal(t, 1, v.NumRuns())
	assert.Equal(t, 5, v.Len())
}

func TestFromBytesErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"missing length", []byte{'a'}},
		{"unterminated length", []byte{'a', 0x80}},
		{"zero length", []byte{'a', 0x00}},
	}
	for _, tt := range tests {
		_, err := FromBytes(tt.data)
		assert.ErrorIs(t, err, ErrDecode, tt.name)
	}

	data := binary.AppendUvarint([]byte{'a'}, uint64(math.MaxInt))
	data = append(data, 'b')
	data = binary.AppendUvarint(data, 2)
	_, err := FromBytes(data)
	assert.ErrorIs(t, err, ErrDecode, "combined length overflow")
}
