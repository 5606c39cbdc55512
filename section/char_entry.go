package section

import (
	"fmt"

	"github.com/arloliu/utfdump/endian"
	"github.com/arloliu/utfdump/errs"
	"github.com/arloliu/utfdump/format"
	"github.com/arloliu/utfdump/internal/pool"
)

// NoDigit is the in-memory sentinel for an absent decimal digit or digit
// field. On the wire an absent digit is the nibble 0xF.
const NoDigit int8 = -1

const (
	digitNibbleAbsent = 0xF

	categoryMask  = 0x1F // flags bits 0-4
	bidiShift     = 5    // flags bits 5-9
	decompShift   = 10   // flags bits 10-14
	mirroredShift = 15   // flags bit 15
	fiveBitMask   = 0x1F
)

// CharEntry is one fixed 28-byte character table record.
//
// The two-byte flags word packs the general category (bits 0-4), the
// bidirectional class (bits 5-9), the decomposition kind (bits 10-14) and the
// mirrored boolean (bit 15). The eight string indices follow in fixed order,
// then the canonical combining class byte and the digit nibble byte (low
// nibble decimal digit, high nibble digit, 0xF when absent).
type CharEntry struct {
	Category   format.Category   // flags bits 0-4
	Bidi       format.BidiClass  // flags bits 5-9
	DecompKind format.DecompKind // flags bits 10-14
	Mirrored   bool              // flags bit 15

	Name      StringIndex // 3 bytes, offset 2-4
	Decomp    StringIndex // 3 bytes, offset 5-7
	Numeric   StringIndex // 3 bytes, offset 8-10
	OldName   StringIndex // 3 bytes, offset 11-13
	Comment   StringIndex // 3 bytes, offset 14-16
	Uppercase StringIndex // 3 bytes, offset 17-19
	Lowercase StringIndex // 3 bytes, offset 20-22
	Titlecase StringIndex // 3 bytes, offset 23-25

	// Combining is the canonical combining class, 0-255.
	Combining uint8 // 1 byte, offset 26

	// DecimalDigit and Digit are 0-9, or NoDigit when the source field is empty.
	DecimalDigit int8 // low nibble of offset 27
	Digit        int8 // high nibble of offset 27
}

// Flags returns the packed 16-bit flags word.
func (e *CharEntry) Flags() uint16 {
	flags := uint16(e.Category) & categoryMask
	flags |= (uint16(e.Bidi) & fiveBitMask) << bidiShift
	flags |= (uint16(e.DecompKind) & fiveBitMask) << decompShift
	if e.Mirrored {
		flags |= 1 << mirroredShift
	}

	return flags
}

// AppendTo appends the 28-byte wire form of the entry to buf.
func (e *CharEntry) AppendTo(buf *pool.ByteBuffer, engine endian.EndianEngine) {
	buf.Grow(CharEntrySize)
	buf.B = engine.AppendUint16(buf.B, e.Flags())

	buf.B = e.Name.AppendTo(buf.B)
	buf.B = e.Decomp.AppendTo(buf.B)
	buf.B = e.Numeric.AppendTo(buf.B)
	buf.B = e.OldName.AppendTo(buf.B)
	buf.B = e.Comment.AppendTo(buf.B)
	buf.B = e.Uppercase.AppendTo(buf.B)
	buf.B = e.Lowercase.AppendTo(buf.B)
	buf.B = e.Titlecase.AppendTo(buf.B)

	buf.B = append(buf.B, e.Combining, packDigits(e.DecimalDigit, e.Digit))
}

// ParseCharEntry reads one entry from the first CharEntrySize bytes of data.
// The caller must supply at least CharEntrySize bytes.
func ParseCharEntry(data []byte, engine endian.EndianEngine) (CharEntry, error) {
	flags := engine.Uint16(data[0:2])

	category, ok := format.DecodeCategory(uint8(flags & categoryMask))
	if !ok {
		return CharEntry{}, fmt.Errorf("%w: wire value %d", errs.ErrUnknownCategory, flags&categoryMask)
	}

	bidi, ok := format.DecodeBidiClass(uint8((flags >> bidiShift) & fiveBitMask))
	if !ok {
		return CharEntry{}, fmt.Errorf("%w: wire value %d", errs.ErrUnknownBidiClass, (flags>>bidiShift)&fiveBitMask)
	}

	decompKind, ok := format.DecodeDecompKind(uint8((flags >> decompShift) & fiveBitMask))
	if !ok {
		return CharEntry{}, fmt.Errorf("%w: wire value %d", errs.ErrUnknownDecompKind, (flags>>decompShift)&fiveBitMask)
	}

	decimalDigit, digit := unpackDigits(data[27])

	return CharEntry{
		Category:     category,
		Bidi:         bidi,
		DecompKind:   decompKind,
		Mirrored:     flags>>mirroredShift != 0,
		Name:         ParseStringIndex(data[2:5]),
		Decomp:       ParseStringIndex(data[5:8]),
		Numeric:      ParseStringIndex(data[8:11]),
		OldName:      ParseStringIndex(data[11:14]),
		Comment:      ParseStringIndex(data[14:17]),
		Uppercase:    ParseStringIndex(data[17:20]),
		Lowercase:    ParseStringIndex(data[20:23]),
		Titlecase:    ParseStringIndex(data[23:26]),
		Combining:    data[26],
		DecimalDigit: decimalDigit,
		Digit:        digit,
	}, nil
}

func packDigits(decimalDigit, digit int8) byte {
	low := byte(digitNibbleAbsent)
	if decimalDigit >= 0 {
		low = byte(decimalDigit) & 0xF
	}

	high := byte(digitNibbleAbsent)
	if digit >= 0 {
		high = byte(digit) & 0xF
	}

	return low | high<<4
}

func unpackDigits(b byte) (decimalDigit, digit int8) {
	decimalDigit, digit = NoDigit, NoDigit
	if low := b & 0xF; low != digitNibbleAbsent {
		decimalDigit = int8(low)
	}
	if high := b >> 4; high != digitNibbleAbsent {
		digit = int8(high)
	}

	return decimalDigit, digit
}
