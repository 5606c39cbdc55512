package section

import (
	"github.com/arloliu/utfdump/endian"
	"github.com/arloliu/utfdump/format"
	"github.com/arloliu/utfdump/internal/pool"
)

// GroupEntry is one 13-byte group table record describing a contiguous span
// of codepoints that is not represented by per-codepoint character records.
//
// A GroupNoValue span has no character data at all. A GroupUsePrevValue span
// shares the character record of the codepoint immediately before Start.
type GroupEntry struct {
	// Start is the first codepoint of the span.
	Start uint32 // 4 bytes, offset 0-3
	// End is the last codepoint of the span, inclusive.
	End uint32 // 4 bytes, offset 4-7
	// CumulativeOffset is the sum of the lengths of all preceding groups in
	// the table. Readers subtract it from a codepoint to recover the index of
	// the codepoint's record in the character table.
	CumulativeOffset uint32 // 4 bytes, offset 8-11
	// Kind discriminates the span behavior.
	Kind format.GroupKind // 1 byte, offset 12
}

// Len returns the number of codepoints the span covers.
func (e GroupEntry) Len() uint32 {
	return e.End - e.Start + 1
}

// Contains reports whether the span covers the given codepoint.
func (e GroupEntry) Contains(codepoint uint32) bool {
	return e.Start <= codepoint && codepoint <= e.End
}

// AppendTo appends the 13-byte wire form of the entry to buf.
func (e GroupEntry) AppendTo(buf *pool.ByteBuffer, engine endian.EndianEngine) {
	buf.Grow(GroupEntrySize)
	buf.B = engine.AppendUint32(buf.B, e.Start)
	buf.B = engine.AppendUint32(buf.B, e.End)
	buf.B = engine.AppendUint32(buf.B, e.CumulativeOffset)
	buf.B = append(buf.B, byte(e.Kind))
}

// ParseGroupEntry reads one entry from the first GroupEntrySize bytes of data.
// The caller must supply at least GroupEntrySize bytes.
func ParseGroupEntry(data []byte, engine endian.EndianEngine) GroupEntry {
	return GroupEntry{
		Start:            engine.Uint32(data[0:4]),
		End:              engine.Uint32(data[4:8]),
		CumulativeOffset: engine.Uint32(data[8:12]),
		Kind:             format.GroupKind(data[12]),
	}
}
