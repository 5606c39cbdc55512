package section

import (
	"fmt"

	"github.com/arloliu/utfdump/endian"
	"github.com/arloliu/utfdump/errs"
)

// Header is the fixed 20-byte container header: the magic literal followed by
// the byte lengths of the three sections in container order.
type Header struct {
	// GroupTableLen is the serialized group table length in bytes.
	GroupTableLen uint32 // 4 bytes, offset 8-11
	// CharTableLen is the serialized character table length in bytes.
	CharTableLen uint32 // 4 bytes, offset 12-15
	// StringTableLen is the serialized string table length in bytes.
	StringTableLen uint32 // 4 bytes, offset 16-19
}

// Parse parses and validates the header from the first HeaderSize bytes of data.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	if string(data[:MagicSize]) != Magic {
		return fmt.Errorf("%w: %q", errs.ErrInvalidMagicNumber, data[:MagicSize])
	}

	engine := endian.GetLittleEndianEngine()
	h.GroupTableLen = engine.Uint32(data[8:12])
	h.CharTableLen = engine.Uint32(data[12:16])
	h.StringTableLen = engine.Uint32(data[16:20])

	if h.GroupTableLen%GroupEntrySize != 0 {
		return fmt.Errorf("%w: group table length %d is not a multiple of %d",
			errs.ErrInvalidTableSize, h.GroupTableLen, GroupEntrySize)
	}

	if h.CharTableLen%CharEntrySize != 0 {
		return fmt.Errorf("%w: char table length %d is not a multiple of %d",
			errs.ErrInvalidTableSize, h.CharTableLen, CharEntrySize)
	}

	return nil
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	copy(b[:MagicSize], Magic)

	engine := endian.GetLittleEndianEngine()
	engine.PutUint32(b[8:12], h.GroupTableLen)
	engine.PutUint32(b[12:16], h.CharTableLen)
	engine.PutUint32(b[16:20], h.StringTableLen)

	return b
}

// TotalSize returns the size of the complete container the header describes.
func (h *Header) TotalSize() int {
	return HeaderSize + int(h.GroupTableLen) + int(h.CharTableLen) + int(h.StringTableLen)
}
