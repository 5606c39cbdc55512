package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(64)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	require.NoError(t, bb.WriteByte(' '))
	bb.MustWrite([]byte("world"))

	require.Equal(t, 11, bb.Len())
	require.Equal(t, []byte("hello world"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.MustWrite([]byte("data"))

	capBefore := bb.Cap()
	bb.Reset()

	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("12345678"))

	bb.Grow(1024)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 1024)
	require.Equal(t, []byte("12345678"), bb.Bytes())

	// Enough spare capacity already, no reallocation.
	capBefore := bb.Cap()
	bb.Grow(16)
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBufferPool(t *testing.T) {
	pool := NewByteBufferPool(32, 128)

	bb := pool.Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("abc"))
	pool.Put(bb)

	// Reused buffers always come back empty.
	bb = pool.Get()
	require.Equal(t, 0, bb.Len())
	pool.Put(bb)

	// Put tolerates nil and drops oversized buffers.
	pool.Put(nil)
	big := NewByteBuffer(256)
	pool.Put(big)
}

func TestTableBufferPool(t *testing.T) {
	bb := GetTableBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), TableBufferDefaultSize)

	bb.MustWrite([]byte("section"))
	PutTableBuffer(bb)
}
