package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/utfdump/errs"
)

func TestHeader_RoundTrip(t *testing.T) {
	header := Header{
		GroupTableLen:  3 * GroupEntrySize,
		CharTableLen:   7 * CharEntrySize,
		StringTableLen: 1234,
	}

	b := header.Bytes()
	require.Len(t, b, HeaderSize)
	require.Equal(t, Magic, string(b[:MagicSize]))

	// Lengths are little-endian u32 at fixed offsets.
	require.Equal(t, []byte{3 * GroupEntrySize, 0, 0, 0}, b[8:12])
	require.Equal(t, []byte{7 * CharEntrySize, 0, 0, 0}, b[12:16])
	require.Equal(t, []byte{0xD2, 0x04, 0, 0}, b[16:20])

	var parsed Header
	require.NoError(t, parsed.Parse(b))
	require.Equal(t, header, parsed)
	require.Equal(t, HeaderSize+3*GroupEntrySize+7*CharEntrySize+1234, parsed.TotalSize())
}

func TestHeader_ParseErrors(t *testing.T) {
	var header Header

	err := header.Parse(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	bad := (&Header{}).Bytes()
	copy(bad, "NOTMAGIC")
	err = header.Parse(bad)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)

	odd := (&Header{GroupTableLen: GroupEntrySize + 1}).Bytes()
	err = header.Parse(odd)
	require.ErrorIs(t, err, errs.ErrInvalidTableSize)

	odd = (&Header{CharTableLen: CharEntrySize - 1}).Bytes()
	err = header.Parse(odd)
	require.ErrorIs(t, err, errs.ErrInvalidTableSize)
}
