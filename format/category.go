package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/utfdump/errs"
)

// Category is the Unicode general category of a character.
// Values occupy 5 bits in the packed flags word of a character record.
type Category uint8

const (
	CategoryLu Category = iota // Letter, Uppercase
	CategoryLl                 // Letter, Lowercase
	CategoryLt                 // Letter, Titlecase
	CategoryMn                 // Mark, Non-Spacing
	CategoryMc                 // Mark, Spacing Combining
	CategoryMe                 // Mark, Enclosing
	CategoryNd                 // Number, Decimal Digit
	CategoryNl                 // Number, Letter
	CategoryNo                 // Number, Other
	CategoryZs                 // Separator, Space
	CategoryZl                 // Separator, Line
	CategoryZp                 // Separator, Paragraph
	CategoryCc                 // Other, Control
	CategoryCf                 // Other, Format
	CategoryCs                 // Other, Surrogate
	CategoryCo                 // Other, Private Use
	CategoryCn                 // Other, Not Assigned
	CategoryLm                 // Letter, Modifier
	CategoryLo                 // Letter, Other
	CategoryPc                 // Punctuation, Connector
	CategoryPd                 // Punctuation, Dash
	CategoryPs                 // Punctuation, Open
	CategoryPe                 // Punctuation, Close
	CategoryPi                 // Punctuation, Initial Quote
	CategoryPf                 // Punctuation, Final Quote
	CategoryPo                 // Punctuation, Other
	CategorySm                 // Symbol, Math
	CategorySc                 // Symbol, Currency
	CategorySk                 // Symbol, Modifier
	CategorySo                 // Symbol, Other

	numCategories
)

var categoryAbbrs = [numCategories]string{
	"Lu", "Ll", "Lt", "Mn", "Mc", "Me", "Nd", "Nl", "No", "Zs",
	"Zl", "Zp", "Cc", "Cf", "Cs", "Co", "Cn", "Lm", "Lo", "Pc",
	"Pd", "Ps", "Pe", "Pi", "Pf", "Po", "Sm", "Sc", "Sk", "So",
}

var categoryNames = [numCategories]string{
	"Letter, Uppercase",
	"Letter, Lowercase",
	"Letter, Titlecase",
	"Mark, Non-Spacing",
	"Mark, Spacing Combining",
	"Mark, Enclosing",
	"Number, Decimal Digit",
	"Number, Letter",
	"Number, Other",
	"Separator, Space",
	"Separator, Line",
	"Separator, Paragraph",
	"Other, Control",
	"Other, Format",
	"Other, Surrogate",
	"Other, Private Use",
	"Other, Not Assigned",
	"Letter, Modifier",
	"Letter, Other",
	"Punctuation, Connector",
	"Punctuation, Dash",
	"Punctuation, Open",
	"Punctuation, Close",
	"Punctuation, Initial Quote",
	"Punctuation, Final Quote",
	"Punctuation, Other",
	"Symbol, Math",
	"Symbol, Currency",
	"Symbol, Modifier",
	"Symbol, Other",
}

var categoryByToken = func() map[string]Category {
	m := make(map[string]Category, numCategories)
	for i, abbr := range categoryAbbrs {
		m[strings.ToUpper(abbr)] = Category(i)
	}

	return m
}()

// ParseCategory resolves a UCD general category token (case-insensitive).
func ParseCategory(token string) (Category, error) {
	if c, ok := categoryByToken[strings.ToUpper(token)]; ok {
		return c, nil
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownCategory, token)
}

// DecodeCategory converts the 5-bit wire value back to a Category.
func DecodeCategory(v uint8) (Category, bool) {
	if v >= uint8(numCategories) {
		return 0, false
	}

	return Category(v), true
}

// String returns the two-letter UCD abbreviation, e.g. "Lu".
func (c Category) String() string {
	if c >= numCategories {
		return "Unknown"
	}

	return categoryAbbrs[c]
}

// FullName returns the category's long English name, e.g. "Letter, Uppercase".
func (c Category) FullName() string {
	if c >= numCategories {
		return "Unknown"
	}

	return categoryNames[c]
}
