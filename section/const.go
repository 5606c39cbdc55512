package section

// Magic is the 8-byte ASCII literal that opens every container.
const Magic = "UTFDUMP!"

// Fixed sizes of the container's wire structures, in bytes.
const (
	// MagicSize is the length of the magic literal.
	MagicSize = 8
	// HeaderSize covers the magic literal plus the three u32 section lengths.
	HeaderSize = MagicSize + 3*4
	// GroupEntrySize covers start, end, cumulative offset and kind.
	GroupEntrySize = 13
	// CharEntrySize covers the packed flags, eight string indices, the
	// combining class byte and the digit nibble byte.
	CharEntrySize = 28
	// StringIndexLen is the width of a u24 string table offset.
	StringIndexLen = 3
)
