package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringIndex_AppendTo(t *testing.T) {
	b := StringIndex(0x123456).AppendTo(nil)
	require.Equal(t, []byte{0x56, 0x34, 0x12}, b)

	b = NilStringIndex.AppendTo(nil)
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF}, b)
}

func TestStringIndex_Parse(t *testing.T) {
	require.Equal(t, StringIndex(0x123456), ParseStringIndex([]byte{0x56, 0x34, 0x12}))
	require.Equal(t, NilStringIndex, ParseStringIndex([]byte{0xFF, 0xFF, 0xFF}))
	require.Equal(t, StringIndex(0), ParseStringIndex([]byte{0, 0, 0}))
}

func TestStringIndex_IsNil(t *testing.T) {
	require.True(t, NilStringIndex.IsNil())
	require.False(t, MaxStringIndex.IsNil())
	require.False(t, StringIndex(0).IsNil())
	require.Equal(t, StringIndex(0xFFFFFE), MaxStringIndex)
}
