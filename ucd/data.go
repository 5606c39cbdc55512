package ucd

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/utfdump/endian"
	"github.com/arloliu/utfdump/errs"
	"github.com/arloliu/utfdump/format"
	"github.com/arloliu/utfdump/section"
)

// UnicodeData is a read-only view over an encoded container. It resolves
// codepoints to their character data without copying the underlying sections.
//
// The view keeps references into the byte slice it was created from; the
// slice must not be modified while the view is in use.
type UnicodeData struct {
	engine    endian.EndianEngine
	groups    []byte
	chars     []byte
	strings   []byte
	charCount uint32
}

// NewUnicodeData validates the header of data and slices it into its three
// sections. The data must be exactly one container, with no trailing bytes.
func NewUnicodeData(data []byte) (*UnicodeData, error) {
	var header section.Header
	if err := header.Parse(data); err != nil {
		return nil, err
	}

	total := header.TotalSize()
	if len(data) < total {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTruncatedData, total, len(data))
	}

	if len(data) > total {
		return nil, fmt.Errorf("%w: %d bytes past the string table", errs.ErrTrailingData, len(data)-total)
	}

	groupEnd := section.HeaderSize + int(header.GroupTableLen)
	charEnd := groupEnd + int(header.CharTableLen)

	return &UnicodeData{
		engine:    endian.GetLittleEndianEngine(),
		groups:    data[section.HeaderSize:groupEnd],
		chars:     data[groupEnd:charEnd],
		strings:   data[charEnd:total],
		charCount: header.CharTableLen / section.CharEntrySize,
	}, nil
}

// GroupCount returns the number of group table entries.
func (d *UnicodeData) GroupCount() int {
	return len(d.groups) / section.GroupEntrySize
}

// CharCount returns the number of character table records.
func (d *UnicodeData) CharCount() int {
	return int(d.charCount)
}

// Get resolves a codepoint to its character data.
//
// It returns false for unassigned codepoints (those inside a no-value group
// or past the scanned range) and for records a corrupted container cannot
// resolve. Codepoints inside a shared First/Last range all resolve to the
// record created at the range start, carrying that record's name.
func (d *UnicodeData) Get(codepoint uint32) (CharData, bool) {
	index, ok := d.charIndexFor(codepoint)
	if !ok || index >= d.charCount {
		return CharData{}, false
	}

	offset := int(index) * section.CharEntrySize
	entry, err := section.ParseCharEntry(d.chars[offset:offset+section.CharEntrySize], d.engine)
	if err != nil {
		return CharData{}, false
	}

	name, ok := d.lookupString(entry.Name)
	if !ok {
		return CharData{}, false
	}

	data := CharData{
		Codepoint:    codepoint,
		Name:         name,
		Category:     entry.Category,
		Combining:    entry.Combining,
		Bidi:         entry.Bidi,
		DecompKind:   entry.DecompKind,
		Mirrored:     entry.Mirrored,
		DecimalDigit: entry.DecimalDigit,
		Digit:        entry.Digit,
	}

	for _, field := range []struct {
		idx  section.StringIndex
		dest *string
	}{
		{entry.Decomp, &data.Decomp},
		{entry.Numeric, &data.Numeric},
		{entry.OldName, &data.OldName},
		{entry.Comment, &data.Comment},
		{entry.Uppercase, &data.Uppercase},
		{entry.Lowercase, &data.Lowercase},
		{entry.Titlecase, &data.Titlecase},
	} {
		if *field.dest, ok = d.lookupString(field.idx); !ok {
			return CharData{}, false
		}
	}

	return data, true
}

// charIndexFor maps a codepoint to its character table index via binary
// search over the group table.
//
// A codepoint inside a use-prev-value group resolves to the record of
// codepoint start-1. A codepoint inside a no-value group has no record. A
// codepoint outside every group is its own index minus the total length of
// all groups that precede it.
func (d *UnicodeData) charIndexFor(codepoint uint32) (uint32, bool) {
	lo, hi := 0, d.GroupCount()
	var offset uint32

	for lo < hi {
		mid := (lo + hi) / 2
		group := d.groupAt(mid)

		switch {
		case group.Contains(codepoint):
			if group.Kind == format.GroupUsePrevValue {
				return group.Start - 1 - group.CumulativeOffset, true
			}

			return 0, false
		case codepoint > group.End:
			offset = group.CumulativeOffset + group.Len()
			lo = mid + 1
		default:
			hi = mid
		}
	}

	if offset > codepoint {
		return 0, false
	}

	return codepoint - offset, true
}

func (d *UnicodeData) groupAt(i int) section.GroupEntry {
	offset := i * section.GroupEntrySize
	return section.ParseGroupEntry(d.groups[offset:offset+section.GroupEntrySize], d.engine)
}

// lookupString resolves a string table index. The nil sentinel resolves to
// the empty string; an out-of-bounds or malformed index reports false.
func (d *UnicodeData) lookupString(idx section.StringIndex) (string, bool) {
	if idx.IsNil() {
		return "", true
	}

	offset := int(idx)
	if offset >= len(d.strings) {
		return "", false
	}

	length := int(d.strings[offset])
	start, end := offset+1, offset+1+length
	if end > len(d.strings) {
		return "", false
	}

	s := d.strings[start:end]
	if !utf8.Valid(s) {
		return "", false
	}

	return string(s), true
}
