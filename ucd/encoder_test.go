package ucd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/utfdump/endian"
	"github.com/arloliu/utfdump/errs"
	"github.com/arloliu/utfdump/format"
	"github.com/arloliu/utfdump/section"
)

// sampleRows is a miniature UnicodeData.txt slice, in codepoint order,
// exercising gaps, a shared First/Last range, digits, decompositions and case
// mappings.
var sampleRows = []string{
	"0000;<control>;Cc;0;BN;;;;;N;NULL;;;;",
	"0035;DIGIT FIVE;Nd;0;EN;;5;5;5;N;;;;;",
	"0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;",
	"0042;LATIN CAPITAL LETTER B;Lu;0;L;;;;;N;;;;0062;",
	"0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041",
	"00B2;SUPERSCRIPT TWO;No;0;EN;<super> 0032;;2;2;N;SUPERSCRIPT DIGIT TWO;;;;",
	"0301;COMBINING ACUTE ACCENT;Mn;230;NSM;;;;;N;NON-SPACING ACUTE;;;;",
	"3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;",
	"4DBF;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;",
}

func parseSampleRows(t *testing.T) []CharData {
	t.Helper()

	rows := make([]CharData, 0, len(sampleRows))
	for _, line := range sampleRows {
		row, err := ParseRow(line)
		require.NoError(t, err)
		rows = append(rows, row)
	}

	return rows
}

func encodeSample(t *testing.T) []byte {
	t.Helper()

	encoder := NewEncoder()
	for _, row := range parseSampleRows(t) {
		require.NoError(t, encoder.AddRow(row))
	}

	data, err := encoder.Finish()
	require.NoError(t, err)

	return data
}

func TestEncoder_Counts(t *testing.T) {
	encoder := NewEncoder()
	for _, row := range parseSampleRows(t) {
		require.NoError(t, encoder.AddRow(row))
	}

	// The Last-marker row creates no record of its own.
	require.Equal(t, len(sampleRows)-1, encoder.CharCount())

	// Six unassigned gaps between the singletons plus the shared range.
	require.Equal(t, 7, encoder.GroupCount())
}

func TestEncoder_SectionLayout(t *testing.T) {
	data := encodeSample(t)

	var header section.Header
	require.NoError(t, header.Parse(data))

	require.Equal(t, uint32(7*section.GroupEntrySize), header.GroupTableLen)
	require.Equal(t, uint32(8*section.CharEntrySize), header.CharTableLen)
	require.Len(t, data, header.TotalSize())
}

func TestEncoder_CumulativeOffsets(t *testing.T) {
	data := encodeSample(t)

	view, err := NewUnicodeData(data)
	require.NoError(t, err)
	require.Equal(t, 7, view.GroupCount())

	// Offsets accumulate the member counts of all preceding groups, and
	// consecutive groups never touch or overlap.
	var cumulative uint32
	var prevEnd int64 = -1
	for i := 0; i < view.GroupCount(); i++ {
		group := view.groupAt(i)
		require.Equal(t, cumulative, group.CumulativeOffset, "group %d", i)
		require.Greater(t, int64(group.Start), prevEnd, "group %d", i)
		require.GreaterOrEqual(t, group.End, group.Start, "group %d", i)
		cumulative += group.Len()
		prevEnd = int64(group.End)
	}
}

func TestEncoder_RangeGroupSemantics(t *testing.T) {
	data := encodeSample(t)

	view, err := NewUnicodeData(data)
	require.NoError(t, err)

	last := view.groupAt(view.GroupCount() - 1)
	require.Equal(t, format.GroupUsePrevValue, last.Kind)
	require.Equal(t, uint32(0x3401), last.Start)
	require.Equal(t, uint32(0x4DBF), last.End)
}

func TestEncoder_StringDedup(t *testing.T) {
	encoder := NewEncoder()

	row, err := ParseRow("0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;")
	require.NoError(t, err)
	require.NoError(t, encoder.AddRow(row))

	count := encoder.StringCount()

	row, err = ParseRow("0100;LATIN CAPITAL LETTER A WITH MACRON;Lu;0;L;0041 0304;;;;N;LATIN CAPITAL LETTER A MACRON;;;0101;")
	require.NoError(t, err)
	require.NoError(t, encoder.AddRow(row))

	countAfterSecond := encoder.StringCount()

	// Name, decomposition, old name and lowercase mapping are all new content.
	require.Equal(t, count+4, countAfterSecond)

	// A third row whose lowercase mapping repeats the first row's "a" adds
	// only its own name.
	row, err = ParseRow("0102;LATIN CAPITAL LETTER A WITH BREVE;Lu;0;L;;;;;N;;;;0061;")
	require.NoError(t, err)
	require.NoError(t, encoder.AddRow(row))

	require.Equal(t, countAfterSecond+1, encoder.StringCount())
}

func TestEncoder_SharedUppercaseIndex(t *testing.T) {
	encoder := NewEncoder()
	for _, line := range []string{
		"0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041",
		"0101;LATIN SMALL LETTER A WITH MACRON;Ll;0;L;0061 0304;;;;N;;;0041;;0041",
	} {
		require.NoError(t, encoder.AddLine(line))
	}

	data, err := encoder.Finish()
	require.NoError(t, err)

	var header section.Header
	require.NoError(t, header.Parse(data))

	charBase := section.HeaderSize + int(header.GroupTableLen)
	engine := endian.GetLittleEndianEngine()

	first, err := section.ParseCharEntry(data[charBase:charBase+section.CharEntrySize], engine)
	require.NoError(t, err)
	second, err := section.ParseCharEntry(data[charBase+section.CharEntrySize:charBase+2*section.CharEntrySize], engine)
	require.NoError(t, err)

	require.False(t, first.Uppercase.IsNil())
	require.Equal(t, first.Uppercase, second.Uppercase)
	require.Equal(t, first.Titlecase, second.Titlecase)
	require.Equal(t, first.Uppercase, first.Titlecase) // all four fields carry "A"
}

func TestEncoder_FinishedState(t *testing.T) {
	encoder := NewEncoder()

	row, err := ParseRow("0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;")
	require.NoError(t, err)
	require.NoError(t, encoder.AddRow(row))

	_, err = encoder.Finish()
	require.NoError(t, err)

	require.ErrorIs(t, encoder.AddRow(row), errs.ErrEncoderFinished)

	_, err = encoder.Finish()
	require.ErrorIs(t, err, errs.ErrEncoderFinished)
}

func TestEncoder_UnterminatedRange(t *testing.T) {
	encoder := NewEncoder()

	row, err := ParseRow("3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;")
	require.NoError(t, err)
	require.NoError(t, encoder.AddRow(row))

	_, err = encoder.Finish()
	require.ErrorIs(t, err, errs.ErrUnterminatedRange)

	// A failed Finish still retires the encoder: no further rows, no retry.
	require.ErrorIs(t, encoder.AddRow(row), errs.ErrEncoderFinished)

	_, err = encoder.Finish()
	require.ErrorIs(t, err, errs.ErrEncoderFinished)
}

func TestEncode_Stream(t *testing.T) {
	// Blank lines are tolerated anywhere in the stream.
	input := strings.Join(sampleRows, "\n") + "\n\n"

	data, err := Encode(strings.NewReader(input))
	require.NoError(t, err)

	view, err := NewUnicodeData(data)
	require.NoError(t, err)
	require.Equal(t, 8, view.CharCount())
}

func TestEncode_ParseFailure(t *testing.T) {
	_, err := Encode(strings.NewReader("not a ucd row"))
	require.ErrorIs(t, err, errs.ErrInvalidFieldCount)
}
