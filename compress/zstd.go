package compress

// ZstdCompressor provides Zstandard compression for encoded containers.
//
// Zstd gives the best ratio of the available codecs on the string-heavy
// container payload and is the right choice when the output is archived or
// embedded rather than exchanged with gzip-only consumers.
//
// Two implementations exist behind build tags: the default pure-Go
// klauspost/compress encoder, and a cgo binding (valyala/gozstd) selected by
// the cgozstd build tag for builds that want the reference implementation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
