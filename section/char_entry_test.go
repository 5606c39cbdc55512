package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/utfdump/endian"
	"github.com/arloliu/utfdump/format"
	"github.com/arloliu/utfdump/internal/pool"
)

func encodeEntry(t *testing.T, entry CharEntry) []byte {
	t.Helper()

	buf := pool.NewByteBuffer(CharEntrySize)
	entry.AppendTo(buf, endian.GetLittleEndianEngine())
	require.Equal(t, CharEntrySize, buf.Len())

	return buf.Bytes()
}

func TestCharEntry_Flags(t *testing.T) {
	entry := CharEntry{
		Category:   format.CategoryLl, // 1
		Bidi:       format.BidiR,      // 1
		DecompKind: format.DecompCompat,
		Mirrored:   true,
	}

	flags := entry.Flags()
	require.Equal(t, uint16(format.CategoryLl), flags&0x1F)
	require.Equal(t, uint16(format.BidiR), (flags>>5)&0x1F)
	require.Equal(t, uint16(format.DecompCompat), (flags>>10)&0x1F)
	require.Equal(t, uint16(1), flags>>15)
}

func TestCharEntry_RoundTrip(t *testing.T) {
	entry := CharEntry{
		Category:     format.CategoryNd,
		Bidi:         format.BidiEN,
		DecompKind:   format.DecompNone,
		Mirrored:     false,
		Name:         StringIndex(0),
		Decomp:       NilStringIndex,
		Numeric:      StringIndex(0x40),
		OldName:      NilStringIndex,
		Comment:      NilStringIndex,
		Uppercase:    NilStringIndex,
		Lowercase:    NilStringIndex,
		Titlecase:    NilStringIndex,
		Combining:    0,
		DecimalDigit: 7,
		Digit:        7,
	}

	b := encodeEntry(t, entry)

	parsed, err := ParseCharEntry(b, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	require.Equal(t, entry, parsed)
}

func TestCharEntry_FieldOffsets(t *testing.T) {
	entry := CharEntry{
		Name:      StringIndex(0x000001),
		Decomp:    StringIndex(0x000002),
		Numeric:   StringIndex(0x000003),
		OldName:   StringIndex(0x000004),
		Comment:   StringIndex(0x000005),
		Uppercase: StringIndex(0x000006),
		Lowercase: StringIndex(0x000007),
		Titlecase: StringIndex(0x000008),
		Combining: 230,
	}
	entry.DecimalDigit = NoDigit
	entry.Digit = NoDigit

	b := encodeEntry(t, entry)

	// The eight string indices sit at fixed 3-byte slots after the flags word.
	for slot := 0; slot < 8; slot++ {
		offset := 2 + slot*StringIndexLen
		require.Equal(t, StringIndex(slot+1), ParseStringIndex(b[offset:offset+StringIndexLen]),
			"string index slot %d", slot)
	}

	require.Equal(t, byte(230), b[26])
	require.Equal(t, byte(0xFF), b[27])
}

func TestCharEntry_DigitNibbles(t *testing.T) {
	// An absent field encodes nibble 0xF independently of the other nibble.
	tests := []struct {
		name         string
		decimalDigit int8
		digit        int8
		want         byte
	}{
		{"both absent", NoDigit, NoDigit, 0xFF},
		{"decimal only", 3, NoDigit, 0xF3},
		{"digit only", NoDigit, 9, 0x9F},
		{"both present", 0, 5, 0x50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := CharEntry{
				Name:      NilStringIndex,
				Decomp:    NilStringIndex,
				Numeric:   NilStringIndex,
				OldName:   NilStringIndex,
				Comment:   NilStringIndex,
				Uppercase: NilStringIndex,
				Lowercase: NilStringIndex,
				Titlecase: NilStringIndex,

				DecimalDigit: tt.decimalDigit,
				Digit:        tt.digit,
			}

			b := encodeEntry(t, entry)
			require.Equal(t, tt.want, b[27])

			parsed, err := ParseCharEntry(b, endian.GetLittleEndianEngine())
			require.NoError(t, err)
			require.Equal(t, tt.decimalDigit, parsed.DecimalDigit)
			require.Equal(t, tt.digit, parsed.Digit)
		})
	}
}

func TestParseCharEntry_InvalidEnums(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	entry := CharEntry{
		Name: NilStringIndex, Decomp: NilStringIndex, Numeric: NilStringIndex,
		OldName: NilStringIndex, Comment: NilStringIndex, Uppercase: NilStringIndex,
		Lowercase: NilStringIndex, Titlecase: NilStringIndex,
		DecimalDigit: NoDigit, Digit: NoDigit,
	}
	b := encodeEntry(t, entry)

	// Category 31 is outside the enumeration.
	engine.PutUint16(b[0:2], 31)
	_, err := ParseCharEntry(b, engine)
	require.Error(t, err)

	// Bidi class 31.
	engine.PutUint16(b[0:2], 31<<5)
	_, err = ParseCharEntry(b, engine)
	require.Error(t, err)

	// Decomposition kind 31.
	engine.PutUint16(b[0:2], 31<<10)
	_, err = ParseCharEntry(b, engine)
	require.Error(t, err)
}
