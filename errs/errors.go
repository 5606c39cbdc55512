// Package errs defines the sentinel error values shared across utfdump
// packages. Callers wrap them with fmt.Errorf("%w: ...") to add context
// and match them with errors.Is.
package errs

import "errors"

// Input and schema errors detected while decoding UCD rows.
var (
	// ErrInvalidFieldCount indicates a UCD row without exactly 15 semicolon-delimited fields.
	ErrInvalidFieldCount = errors.New("invalid field count")
	// ErrInvalidCodepoint indicates a codepoint field that is not valid hexadecimal.
	ErrInvalidCodepoint = errors.New("invalid codepoint")
	// ErrInvalidCombiningClass indicates a combining class outside 0-255.
	ErrInvalidCombiningClass = errors.New("invalid combining class")
	// ErrInvalidDigit indicates a digit field that is not a base-10 integer in 0-9.
	ErrInvalidDigit = errors.New("invalid digit value")
	// ErrUnknownCategory indicates an unrecognized general category token.
	ErrUnknownCategory = errors.New("unknown general category")
	// ErrUnknownBidiClass indicates an unrecognized bidirectional class token.
	ErrUnknownBidiClass = errors.New("unknown bidirectional class")
	// ErrUnknownDecompKind indicates an unrecognized decomposition tag.
	ErrUnknownDecompKind = errors.New("unknown decomposition kind")
	// ErrInvalidDecomposition indicates a malformed decomposition field, such
	// as a tag without its closing bracket.
	ErrInvalidDecomposition = errors.New("invalid decomposition field")
)

// Ordering and range errors detected while encoding rows.
var (
	// ErrRowOutOfOrder indicates a row whose codepoint is not strictly greater
	// than the previous row's codepoint.
	ErrRowOutOfOrder = errors.New("row codepoint out of order")
	// ErrExpectedLastMarker indicates a row following a First-marker row whose
	// name is not the matching Last-marker form.
	ErrExpectedLastMarker = errors.New("expected range Last marker")
	// ErrUnexpectedLastMarker indicates a Last-marker row with no preceding
	// First-marker row.
	ErrUnexpectedLastMarker = errors.New("unexpected range Last marker")
	// ErrUnterminatedRange indicates input that ended with an open First-marker range.
	ErrUnterminatedRange = errors.New("unterminated First/Last range")
	// ErrEncoderFinished indicates use of an encoder after Finish was called.
	ErrEncoderFinished = errors.New("encoder already finished")
)

// String table errors.
var (
	// ErrStringTooLong indicates a string whose UTF-8 encoding exceeds 255 bytes.
	ErrStringTooLong = errors.New("string exceeds maximum length")
	// ErrStringTableFull indicates a string table offset that reached the
	// reserved 0xFFFFFF sentinel.
	ErrStringTableFull = errors.New("string table full")
)

// Container errors detected while parsing encoded data.
var (
	// ErrInvalidMagicNumber indicates data that does not start with the UTFDUMP! magic.
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	// ErrInvalidHeaderSize indicates data shorter than the fixed header.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidTableSize indicates a section whose length is not a multiple
	// of its entry size.
	ErrInvalidTableSize = errors.New("invalid table size")
	// ErrTruncatedData indicates data shorter than the header's section lengths require.
	ErrTruncatedData = errors.New("truncated data")
	// ErrTrailingData indicates bytes after the last section described by the header.
	ErrTrailingData = errors.New("unexpected trailing data")
)
