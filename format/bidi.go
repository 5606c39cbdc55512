package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/utfdump/errs"
)

// BidiClass is the Unicode bidirectional class of a character.
// Values occupy 5 bits in the packed flags word of a character record.
type BidiClass uint8

const (
	BidiL   BidiClass = iota // Left-to-Right
	BidiR                    // Right-to-Left
	BidiAL                   // Right-to-Left Arabic
	BidiEN                   // European Number
	BidiES                   // European Number Separator
	BidiET                   // European Number Terminator
	BidiAN                   // Arabic Number
	BidiCS                   // Common Number Separator
	BidiNSM                  // Non-Spacing Mark
	BidiBN                   // Boundary Neutral
	BidiB                    // Paragraph Separator
	BidiS                    // Segment Separator
	BidiWS                   // Whitespace
	BidiON                   // Other Neutral
	BidiLRE                  // Left-to-Right Embedding
	BidiLRO                  // Left-to-Right Override
	BidiRLE                  // Right-to-Left Embedding
	BidiRLO                  // Right-to-Left Override
	BidiPDF                  // Pop Directional Format
	BidiLRI                  // Left-to-Right Isolate
	BidiRLI                  // Right-to-Left Isolate
	BidiFSI                  // First Strong Isolate
	BidiPDI                  // Pop Directional Isolate

	numBidiClasses
)

var bidiTokens = [numBidiClasses]string{
	"L", "R", "AL", "EN", "ES", "ET", "AN", "CS", "NSM", "BN",
	"B", "S", "WS", "ON", "LRE", "LRO", "RLE", "RLO", "PDF", "LRI",
	"RLI", "FSI", "PDI",
}

var bidiByToken = func() map[string]BidiClass {
	m := make(map[string]BidiClass, numBidiClasses)
	for i, token := range bidiTokens {
		m[token] = BidiClass(i)
	}

	return m
}()

// ParseBidiClass resolves a UCD bidirectional class token (case-insensitive).
func ParseBidiClass(token string) (BidiClass, error) {
	if b, ok := bidiByToken[strings.ToUpper(token)]; ok {
		return b, nil
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownBidiClass, token)
}

// DecodeBidiClass converts the 5-bit wire value back to a BidiClass.
func DecodeBidiClass(v uint8) (BidiClass, bool) {
	if v >= uint8(numBidiClasses) {
		return 0, false
	}

	return BidiClass(v), true
}

// String returns the UCD token, e.g. "AL".
func (b BidiClass) String() string {
	if b >= numBidiClasses {
		return "Unknown"
	}

	return bidiTokens[b]
}
