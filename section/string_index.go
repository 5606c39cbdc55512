package section

// StringIndex is a 3-byte offset into the string table, pointing at the
// length byte of an entry. The all-ones pattern 0xFFFFFF is reserved as the
// nil sentinel meaning "field absent", so real offsets must stay below it.
type StringIndex uint32

const (
	// NilStringIndex marks an absent optional string field.
	NilStringIndex StringIndex = 0xFFFFFF

	// MaxStringIndex is the largest offset that can be assigned to real data.
	MaxStringIndex StringIndex = NilStringIndex - 1
)

// IsNil reports whether the index is the absent-field sentinel.
func (i StringIndex) IsNil() bool {
	return i == NilStringIndex
}

// AppendTo appends the index as 3 little-endian bytes.
func (i StringIndex) AppendTo(b []byte) []byte {
	return append(b, byte(i), byte(i>>8), byte(i>>16))
}

// ParseStringIndex reads a 3-byte little-endian index. The caller must supply
// at least StringIndexLen bytes.
func ParseStringIndex(b []byte) StringIndex {
	_ = b[2]
	return StringIndex(b[0]) | StringIndex(b[1])<<8 | StringIndex(b[2])<<16
}
