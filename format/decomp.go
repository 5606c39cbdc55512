package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/utfdump/errs"
)

// DecompKind classifies a character's decomposition mapping.
// Values occupy 5 bits in the packed flags word of a character record.
//
// DecompNone means the character has no decomposition. DecompAnonymous means
// the UCD field carried a codepoint list without an angle-bracketed tag (a
// canonical mapping). The remaining kinds correspond to the UCD compatibility
// formatting tags.
type DecompKind uint8

const (
	DecompNone      DecompKind = iota // no decomposition
	DecompAnonymous                   // untagged (canonical) mapping
	DecompNoBreak                     // <noBreak>
	DecompCompat                      // <compat>
	DecompSuper                       // <super>
	DecompFraction                    // <fraction>
	DecompSub                         // <sub>
	DecompFont                        // <font>
	DecompCircle                      // <circle>
	DecompWide                        // <wide>
	DecompVertical                    // <vertical>
	DecompSquare                      // <square>
	DecompIsolated                    // <isolated>
	DecompFinal                       // <final>
	DecompInitial                     // <initial>
	DecompMedial                      // <medial>
	DecompSmall                       // <small>
	DecompNarrow                      // <narrow>

	numDecompKinds
)

var decompTokens = [numDecompKinds]string{
	"NONE", "ANONYMOUS", "NOBREAK", "COMPAT", "SUPER", "FRACTION",
	"SUB", "FONT", "CIRCLE", "WIDE", "VERTICAL", "SQUARE",
	"ISOLATED", "FINAL", "INITIAL", "MEDIAL", "SMALL", "NARROW",
}

var decompByToken = func() map[string]DecompKind {
	m := make(map[string]DecompKind, numDecompKinds)
	for i, token := range decompTokens {
		m[token] = DecompKind(i)
	}

	return m
}()

// ParseDecompKind resolves an angle-bracketed UCD decomposition tag such as
// "compat" or "noBreak" (case-insensitive, brackets already stripped).
func ParseDecompKind(token string) (DecompKind, error) {
	if k, ok := decompByToken[strings.ToUpper(token)]; ok {
		return k, nil
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownDecompKind, token)
}

// DecodeDecompKind converts the 5-bit wire value back to a DecompKind.
func DecodeDecompKind(v uint8) (DecompKind, bool) {
	if v >= uint8(numDecompKinds) {
		return 0, false
	}

	return DecompKind(v), true
}

// String returns the UCD tag in its conventional capitalization, e.g. "compat".
func (k DecompKind) String() string {
	switch k {
	case DecompNone:
		return "none"
	case DecompAnonymous:
		return "anonymous"
	case DecompNoBreak:
		return "noBreak"
	default:
		if k >= numDecompKinds {
			return "unknown"
		}

		return strings.ToLower(decompTokens[k])
	}
}
