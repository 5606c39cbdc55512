// Package ucd implements the encoding pipeline that turns a textual
// UnicodeData.txt dump into the compact utfdump container, and the reader
// that resolves codepoints against an encoded container.
package ucd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/utfdump/errs"
	"github.com/arloliu/utfdump/format"
	"github.com/arloliu/utfdump/section"
)

// numRowFields is the fixed field count of a UnicodeData.txt record.
const numRowFields = 15

// CharData is the decoded form of one UCD row: enumerations resolved,
// codepoint lists converted to literal text, optional fields normalized.
//
// The same type describes a record read back from an encoded container, where
// it represents either a single codepoint or every codepoint of a shared
// First/Last range.
type CharData struct {
	// Codepoint is the character's Unicode scalar value.
	Codepoint uint32
	// Name is the character name. For First/Last marker rows it still carries
	// the full marker form, e.g. "<CJK Ideograph, First>".
	Name string
	// Category is the general category.
	Category format.Category
	// Combining is the canonical combining class, 0-255.
	Combining uint8
	// Bidi is the bidirectional class.
	Bidi format.BidiClass
	// DecompKind classifies the decomposition; DecompNone when absent.
	DecompKind format.DecompKind
	// Decomp is the decomposition mapping as literal text, "" when
	// DecompKind is DecompNone.
	Decomp string
	// DecimalDigit and Digit are 0-9, or section.NoDigit when absent.
	DecimalDigit int8
	Digit        int8
	// Numeric is the numeric value as raw text, "" when absent.
	Numeric string
	// Mirrored reports whether the character is mirrored in bidirectional text.
	Mirrored bool
	// OldName is the Unicode 1.0 name, "" when absent.
	OldName string
	// Comment is the ISO 10646 comment, "" when absent.
	Comment string
	// Uppercase, Lowercase and Titlecase are the simple case mappings as
	// literal text, "" when absent.
	Uppercase string
	Lowercase string
	Titlecase string
}

// ParseRow decodes one semicolon-delimited UnicodeData.txt record.
//
// The record must have exactly 15 fields. Leading and trailing whitespace is
// stripped from every field. An unparsable field or an unrecognized category,
// bidirectional class or decomposition tag is a fatal error.
func ParseRow(line string) (CharData, error) {
	fields := strings.Split(line, ";")
	if len(fields) != numRowFields {
		return CharData{}, fmt.Errorf("%w: got %d fields, want %d",
			errs.ErrInvalidFieldCount, len(fields), numRowFields)
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	codepoint, err := strconv.ParseUint(fields[0], 16, 32)
	if err != nil {
		return CharData{}, fmt.Errorf("%w: %q", errs.ErrInvalidCodepoint, fields[0])
	}

	category, err := format.ParseCategory(fields[2])
	if err != nil {
		return CharData{}, err
	}

	combining, err := strconv.ParseUint(fields[3], 10, 8)
	if err != nil {
		return CharData{}, fmt.Errorf("%w: %q", errs.ErrInvalidCombiningClass, fields[3])
	}

	bidi, err := format.ParseBidiClass(fields[4])
	if err != nil {
		return CharData{}, err
	}

	decompKind, decomp, err := parseDecomposition(fields[5])
	if err != nil {
		return CharData{}, err
	}

	decimalDigit, err := parseDigit(fields[6])
	if err != nil {
		return CharData{}, err
	}

	digit, err := parseDigit(fields[7])
	if err != nil {
		return CharData{}, err
	}

	uppercase, err := parseCodepointList(fields[12])
	if err != nil {
		return CharData{}, err
	}

	lowercase, err := parseCodepointList(fields[13])
	if err != nil {
		return CharData{}, err
	}

	titlecase, err := parseCodepointList(fields[14])
	if err != nil {
		return CharData{}, err
	}

	return CharData{
		Codepoint:    uint32(codepoint), //nolint:gosec
		Name:         fields[1],
		Category:     category,
		Combining:    uint8(combining), //nolint:gosec
		Bidi:         bidi,
		DecompKind:   decompKind,
		Decomp:       decomp,
		DecimalDigit: decimalDigit,
		Digit:        digit,
		Numeric:      fields[8],
		Mirrored:     fields[9] == "Y",
		OldName:      fields[10],
		Comment:      fields[11],
		Uppercase:    uppercase,
		Lowercase:    lowercase,
		Titlecase:    titlecase,
	}, nil
}

// parseDecomposition splits a UCD decomposition field into its kind and the
// mapping text.
//
// An empty field is DecompNone. A field opening with an angle-bracketed tag
// resolves the tag to a named kind and treats the remainder as the codepoint
// list; a bare field is an anonymous (canonical) mapping.
func parseDecomposition(field string) (format.DecompKind, string, error) {
	if field == "" {
		return format.DecompNone, "", nil
	}

	if rest, ok := strings.CutPrefix(field, "<"); ok {
		tag, list, ok := strings.Cut(rest, ">")
		if !ok {
			return 0, "", fmt.Errorf("%w: %q has no closing bracket", errs.ErrInvalidDecomposition, field)
		}

		kind, err := format.ParseDecompKind(strings.TrimSpace(tag))
		if err != nil {
			return 0, "", err
		}

		text, err := parseCodepointList(strings.TrimSpace(list))
		if err != nil {
			return 0, "", err
		}

		return kind, text, nil
	}

	text, err := parseCodepointList(field)
	if err != nil {
		return 0, "", err
	}

	return format.DecompAnonymous, text, nil
}

// parseCodepointList converts a whitespace-separated list of hexadecimal
// codepoints into the literal text those codepoints spell.
func parseCodepointList(field string) (string, error) {
	if field == "" {
		return "", nil
	}

	var sb strings.Builder
	for _, token := range strings.Fields(field) {
		codepoint, err := strconv.ParseUint(token, 16, 32)
		if err != nil {
			return "", fmt.Errorf("%w: %q in codepoint list", errs.ErrInvalidCodepoint, token)
		}

		sb.WriteRune(rune(codepoint))
	}

	return sb.String(), nil
}

// parseDigit parses an optional base-10 digit field, valid values 0-9.
func parseDigit(field string) (int8, error) {
	if field == "" {
		return section.NoDigit, nil
	}

	v, err := strconv.ParseUint(field, 10, 8)
	if err != nil || v > 9 {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidDigit, field)
	}

	return int8(v), nil
}
