package format

import "strconv"

// CombiningClass is the canonical combining class of a character, used in
// canonical ordering of combining marks. It is stored verbatim as one byte in
// a character record rather than enumerated, but the fixed classes defined by
// the UCD have conventional names.
type CombiningClass uint8

var combiningNames = map[CombiningClass]string{
	0:   "Not_Reordered",
	1:   "Overlay",
	6:   "Han_Reading",
	7:   "Nukta",
	8:   "Kana_Voicing",
	9:   "Virama",
	200: "Attached_Below_Left",
	202: "Attached_Below",
	214: "Attached_Above",
	216: "Attached_Above_Right",
	218: "Below_Left",
	220: "Below",
	222: "Below_Right",
	224: "Left",
	226: "Right",
	228: "Above_Left",
	230: "Above",
	232: "Above_Right",
	233: "Double_Below",
	234: "Double_Above",
	240: "Iota_Subscript",
}

// Name returns the conventional name of the class, if it has one.
func (c CombiningClass) Name() (string, bool) {
	name, ok := combiningNames[c]
	return name, ok
}

// IsCombining reports whether the class participates in canonical reordering.
func (c CombiningClass) IsCombining() bool {
	return c != 0
}

// String returns the conventional name, or "Ccc<n>" for unnamed classes.
func (c CombiningClass) String() string {
	if name, ok := combiningNames[c]; ok {
		return name
	}

	return "Ccc" + strconv.Itoa(int(c))
}
