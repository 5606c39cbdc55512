// Package utfdump encodes the textual Unicode Character Database into a
// compact, randomly-addressable binary container.
//
// The container packs one fixed 28-byte record per assigned character, a
// group table that collapses unassigned gaps and large shared ranges (such as
// the CJK ideograph blocks), and a deduplicated string table for names,
// decompositions and case mappings. All multi-byte integers are little-endian.
//
// # Basic Usage
//
// Encoding a UnicodeData.txt stream:
//
//	data, err := utfdump.Encode(file, utfdump.WithCompression(format.CompressionGzip))
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("unicode_data_encoded.gz", data, 0o644)
//
// Looking up codepoints in an encoded container:
//
//	view, err := utfdump.Decode(data, format.CompressionGzip)
//	if err != nil {
//	    return err
//	}
//	if cd, ok := view.Get(uint32('A')); ok {
//	    fmt.Println(cd.Name) // LATIN CAPITAL LETTER A
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the ucd,
// compress and source packages, covering the common fetch-encode-write flow.
// For fine-grained control (row-by-row encoding, custom codecs), use those
// packages directly.
package utfdump

import (
	"context"
	"fmt"
	"io"

	"github.com/arloliu/utfdump/compress"
	"github.com/arloliu/utfdump/format"
	"github.com/arloliu/utfdump/internal/options"
	"github.com/arloliu/utfdump/source"
	"github.com/arloliu/utfdump/ucd"
)

// EncodeConfig holds the configuration applied by the top-level Encode
// wrappers.
type EncodeConfig struct {
	compression format.CompressionType
}

// EncodeOption is a functional option for configuring the Encode wrappers.
type EncodeOption = options.Option[*EncodeConfig]

// WithCompression selects the compression wrapper applied to the finished
// container. The default is CompressionNone.
func WithCompression(compression format.CompressionType) EncodeOption {
	return options.New(func(cfg *EncodeConfig) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		cfg.compression = compression

		return nil
	})
}

// Encode runs the full pipeline over a UnicodeData.txt stream: decode rows,
// build the container, apply the configured compression wrapper.
func Encode(r io.Reader, opts ...EncodeOption) ([]byte, error) {
	cfg := &EncodeConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	container, err := ucd.Encode(r)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return codec.Compress(container)
}

// EncodeFrom fetches the UCD text from the provider and encodes it.
//
// The fetch is the only network interaction of the pipeline: it happens once,
// before the encoding pass begins, and a failure is returned immediately.
func EncodeFrom(ctx context.Context, provider source.Provider, opts ...EncodeOption) ([]byte, error) {
	body, err := provider.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return Encode(body, opts...)
}

// Decode unwraps the compression applied at encode time and returns a
// read-only view over the container.
func Decode(data []byte, compression format.CompressionType) (*ucd.UnicodeData, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	container, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompress container: %w", err)
	}

	return ucd.NewUnicodeData(container)
}
