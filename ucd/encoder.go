package ucd

import (
	"bufio"
	"io"
	"strings"

	"github.com/arloliu/utfdump/encoding"
	"github.com/arloliu/utfdump/endian"
	"github.com/arloliu/utfdump/errs"
	"github.com/arloliu/utfdump/format"
	"github.com/arloliu/utfdump/internal/pool"
	"github.com/arloliu/utfdump/section"
)

// Encoder builds a utfdump container from UCD rows supplied in strictly
// ascending codepoint order.
//
// Rows stream through a single forward pass: each row either creates one
// fixed-size character record or extends a group (unassigned gap or shared
// First/Last range). Finish assembles header, group table, character table
// and string table into the final byte stream.
//
// All failures are fatal: after any Add error the encoder is in an undefined
// state and must be discarded without calling Finish.
//
// Note: The Encoder is NOT thread-safe and NOT reusable. After calling
// Finish, a new encoder must be created for further encoding.
type Encoder struct {
	engine    endian.EndianEngine
	strings   *encoding.StringTableEncoder
	tracker   *rangeTracker
	charBuf   *pool.ByteBuffer
	charCount int
	finished  bool
}

// NewEncoder creates an empty container encoder.
func NewEncoder() *Encoder {
	return &Encoder{
		engine:  endian.GetLittleEndianEngine(),
		strings: encoding.NewStringTableEncoder(),
		tracker: newRangeTracker(),
		charBuf: pool.GetTableBuffer(),
	}
}

// AddLine parses one UnicodeData.txt line and adds it to the container.
// Blank lines are skipped.
func (e *Encoder) AddLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	row, err := ParseRow(line)
	if err != nil {
		return err
	}

	return e.AddRow(row)
}

// AddRow adds one decoded row to the container.
//
// The row's codepoint must be strictly greater than the previous row's. A row
// that closes a First/Last range creates no record of its own; every other
// row appends exactly one 28-byte record to the character table.
func (e *Encoder) AddRow(row CharData) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	action, err := e.tracker.observe(row.Codepoint, row.Name)
	if err != nil {
		return err
	}

	if !action.createRecord {
		return nil
	}

	entry := section.CharEntry{
		Category:     row.Category,
		Bidi:         row.Bidi,
		DecompKind:   row.DecompKind,
		Mirrored:     row.Mirrored,
		Combining:    row.Combining,
		DecimalDigit: row.DecimalDigit,
		Digit:        row.Digit,
	}

	// The name is always present, even when empty; optional fields collapse
	// to the nil sentinel when empty.
	if entry.Name, err = e.strings.Push(action.name); err != nil {
		return err
	}

	if row.DecompKind == format.DecompNone {
		entry.Decomp = section.NilStringIndex
	} else if entry.Decomp, err = e.strings.Push(row.Decomp); err != nil {
		return err
	}

	if entry.Numeric, err = e.strings.PushOptional(row.Numeric); err != nil {
		return err
	}

	if entry.OldName, err = e.strings.PushOptional(row.OldName); err != nil {
		return err
	}

	if entry.Comment, err = e.strings.PushOptional(row.Comment); err != nil {
		return err
	}

	if entry.Uppercase, err = e.strings.PushOptional(row.Uppercase); err != nil {
		return err
	}

	if entry.Lowercase, err = e.strings.PushOptional(row.Lowercase); err != nil {
		return err
	}

	if entry.Titlecase, err = e.strings.PushOptional(row.Titlecase); err != nil {
		return err
	}

	entry.AppendTo(e.charBuf, e.engine)
	e.charCount++

	return nil
}

// CharCount returns the number of character records created so far.
func (e *Encoder) CharCount() int {
	return e.charCount
}

// GroupCount returns the number of group entries accumulated so far.
func (e *Encoder) GroupCount() int {
	return len(e.tracker.groups)
}

// StringCount returns the number of distinct string table entries so far.
func (e *Encoder) StringCount() int {
	return e.strings.Len()
}

// Finish assembles and returns the container bytes.
//
// It fails if the input ended while a First/Last range was still open. The
// encoder's buffers are released; the encoder must not be used afterwards.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}

	e.finished = true

	groups, err := e.tracker.finish()
	if err != nil {
		e.release()
		return nil, err
	}

	groupBuf := pool.GetTableBuffer()
	defer pool.PutTableBuffer(groupBuf)

	var cumulative uint32
	for _, group := range groups {
		group.CumulativeOffset = cumulative
		group.AppendTo(groupBuf, e.engine)
		cumulative += group.Len()
	}

	header := section.Header{
		GroupTableLen:  uint32(groupBuf.Len()),   //nolint:gosec
		CharTableLen:   uint32(e.charBuf.Len()),  //nolint:gosec
		StringTableLen: uint32(e.strings.Size()), //nolint:gosec
	}

	out := make([]byte, 0, header.TotalSize())
	out = append(out, header.Bytes()...)
	out = append(out, groupBuf.Bytes()...)
	out = append(out, e.charBuf.Bytes()...)
	out = append(out, e.strings.Bytes()...)

	e.release()

	return out, nil
}

// release returns the encoder's buffers to the pool.
func (e *Encoder) release() {
	pool.PutTableBuffer(e.charBuf)
	e.charBuf = nil
	e.strings.Reset()
}

// Encode runs the whole pipeline over a UnicodeData.txt stream and returns
// the container bytes.
func Encode(r io.Reader) ([]byte, error) {
	encoder := NewEncoder()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := encoder.AddLine(scanner.Text()); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return encoder.Finish()
}
