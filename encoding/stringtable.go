// Package encoding implements the stream encoders that build the variable
// length sections of a utfdump container.
package encoding

import (
	"fmt"

	"github.com/arloliu/utfdump/errs"
	"github.com/arloliu/utfdump/internal/hash"
	"github.com/arloliu/utfdump/internal/pool"
	"github.com/arloliu/utfdump/section"
)

// MaxStringLength is the maximum UTF-8 byte length of a string table entry.
// Each entry carries a single length byte, so 255 is a hard format limit.
const MaxStringLength = 255

// StringTableEncoder builds the deduplicated string table section.
//
// Each entry is encoded as a 1-byte length followed by the UTF-8 bytes, and
// is addressed by the byte offset of its length byte. Pushing byte-identical
// text any number of times, from any semantic field, always yields the offset
// assigned at the first push.
//
// Dedup is keyed by the xxHash64 of the content; entries that share a hash
// are verified byte-for-byte against the table before an offset is reused, so
// a hash collision costs one extra entry comparison, never a wrong index.
//
// Note: The StringTableEncoder is NOT thread-safe. Each encoder instance
// should be used by a single goroutine at a time.
type StringTableEncoder struct {
	buf   *pool.ByteBuffer
	index map[uint64][]section.StringIndex // content hash → offsets with that hash
	count int
}

// NewStringTableEncoder creates an empty string table encoder backed by a
// pooled buffer.
func NewStringTableEncoder() *StringTableEncoder {
	return &StringTableEncoder{
		buf:   pool.GetTableBuffer(),
		index: make(map[uint64][]section.StringIndex),
	}
}

// Push interns text and returns its string table index.
//
// The first push of a given content appends a new entry; later pushes of
// byte-identical content return the original index without growing the table.
//
// Push fails if the UTF-8 encoding of text exceeds MaxStringLength bytes, or
// if a new entry's offset would reach the reserved nil sentinel 0xFFFFFF.
// Both are fatal encoding errors: the table is left unchanged and the caller
// is expected to abort the run.
func (e *StringTableEncoder) Push(text string) (section.StringIndex, error) {
	if len(text) > MaxStringLength {
		return section.NilStringIndex, fmt.Errorf("%w: %d bytes, maximum %d",
			errs.ErrStringTooLong, len(text), MaxStringLength)
	}

	key := hash.ID(text)
	for _, idx := range e.index[key] {
		if e.at(idx) == text {
			return idx, nil
		}
	}

	offset := e.buf.Len()
	if offset > int(section.MaxStringIndex) {
		return section.NilStringIndex, fmt.Errorf("%w: offset %#x reached the nil sentinel",
			errs.ErrStringTableFull, offset)
	}

	e.buf.Grow(1 + len(text))
	e.buf.B = append(e.buf.B, byte(len(text)))
	e.buf.B = append(e.buf.B, text...)

	idx := section.StringIndex(offset) //nolint:gosec
	e.index[key] = append(e.index[key], idx)
	e.count++

	return idx, nil
}

// PushOptional interns text like Push, but maps empty text to the nil
// sentinel instead of creating a zero-length entry. Optional UCD fields use
// it so that an absent field always encodes as 0xFFFFFF.
func (e *StringTableEncoder) PushOptional(text string) (section.StringIndex, error) {
	if text == "" {
		return section.NilStringIndex, nil
	}

	return e.Push(text)
}

// at returns the entry content stored at idx. The index must have been
// returned by a previous Push.
func (e *StringTableEncoder) at(idx section.StringIndex) string {
	offset := int(idx)
	length := int(e.buf.B[offset])

	return string(e.buf.B[offset+1 : offset+1+length])
}

// Len returns the number of distinct entries in the table.
func (e *StringTableEncoder) Len() int {
	return e.count
}

// Size returns the serialized size of the table in bytes.
func (e *StringTableEncoder) Size() int {
	return e.buf.Len()
}

// Bytes returns the serialized table. The slice is owned by the encoder and
// is only valid until Reset is called.
func (e *StringTableEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Reset releases the encoder's buffer back to the pool. The encoder must not
// be used afterwards.
func (e *StringTableEncoder) Reset() {
	pool.PutTableBuffer(e.buf)
	e.buf = nil
	e.index = nil
	e.count = 0
}
