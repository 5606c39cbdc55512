// Package format defines the fixed enumerations of the utfdump container
// format: general categories, bidirectional classes, decomposition kinds,
// group kinds and compression types.
//
// The numeric values of every enumeration are part of the wire format and
// must never be reordered.
package format

type (
	// GroupKind discriminates group table entries.
	GroupKind uint8

	// CompressionType selects the optional compression wrapper applied to a
	// finished container.
	CompressionType uint8
)

const (
	// GroupNoValue marks a span of codepoints with no character records.
	GroupNoValue GroupKind = 0
	// GroupUsePrevValue marks a span that shares the character record of the
	// codepoint immediately before the span's start.
	GroupUsePrevValue GroupKind = 1
)

const (
	CompressionNone CompressionType = 0x1 // no compression
	CompressionGzip CompressionType = 0x2 // gzip (klauspost/compress/gzip)
	CompressionZstd CompressionType = 0x3 // Zstandard
	CompressionS2   CompressionType = 0x4 // S2
	CompressionLZ4  CompressionType = 0x5 // LZ4
)

func (k GroupKind) String() string {
	switch k {
	case GroupNoValue:
		return "NoValue"
	case GroupUsePrevValue:
		return "UsePrevValue"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
