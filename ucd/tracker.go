package ucd

import (
	"fmt"
	"strings"

	"github.com/arloliu/utfdump/errs"
	"github.com/arloliu/utfdump/format"
	"github.com/arloliu/utfdump/section"
)

// UCD marker suffixes denoting the boundary rows of a shared property range,
// e.g. "<CJK Ideograph Extension A, First>".
const (
	firstMarkerSuffix = ", First>"
	lastMarkerSuffix  = ", Last>"
)

type trackerState uint8

const (
	trackerIdle trackerState = iota
	trackerInRange
)

// rangeTracker consumes codepoints in strictly ascending order and detects
// unassigned gaps, paired First/Last range markers and ordinary singleton
// codepoints, accumulating the group table entries as it goes.
//
// Only explicit gaps and First/Last pairs materialize as groups; contiguous
// singleton codepoints stay implicit.
type rangeTracker struct {
	state      trackerState
	prevCode   int64  // previous row's codepoint, -1 before the first row
	rangeStart uint32 // codepoint of the open First-marker row
	groups     []section.GroupEntry
}

// rowAction is the tracker's verdict on the current row.
type rowAction struct {
	// createRecord reports whether the row gets its own character record.
	// Last-marker rows do not: the record created at the range start covers them.
	createRecord bool
	// name is the record name, with the First-marker annotation stripped.
	name string
}

func newRangeTracker() *rangeTracker {
	return &rangeTracker{prevCode: -1}
}

// observe advances the state machine with the next row.
func (t *rangeTracker) observe(codepoint uint32, name string) (rowAction, error) {
	if t.prevCode >= 0 && int64(codepoint) <= t.prevCode {
		return rowAction{}, fmt.Errorf("%w: %#06x follows %#06x",
			errs.ErrRowOutOfOrder, codepoint, t.prevCode)
	}

	if t.state == trackerInRange {
		if !isLastMarker(name) {
			return rowAction{}, fmt.Errorf("%w: range opened at %#06x, got name %q at %#06x",
				errs.ErrExpectedLastMarker, t.rangeStart, name, codepoint)
		}

		// The record created at the First row covers the whole range. The
		// group starts one past that codepoint so a reader resolves every
		// member to the record of codepoint start-1.
		t.groups = append(t.groups, section.GroupEntry{
			Start: t.rangeStart + 1,
			End:   codepoint,
			Kind:  format.GroupUsePrevValue,
		})

		t.state = trackerIdle
		t.prevCode = int64(codepoint)

		return rowAction{createRecord: false}, nil
	}

	if t.prevCode >= 0 && int64(codepoint) > t.prevCode+1 {
		t.groups = append(t.groups, section.GroupEntry{
			Start: uint32(t.prevCode) + 1, //nolint:gosec
			End:   codepoint - 1,
			Kind:  format.GroupNoValue,
		})
	}

	t.prevCode = int64(codepoint)

	if isLastMarker(name) {
		return rowAction{}, fmt.Errorf("%w: %q at %#06x", errs.ErrUnexpectedLastMarker, name, codepoint)
	}

	if bare, ok := cutFirstMarker(name); ok {
		t.state = trackerInRange
		t.rangeStart = codepoint

		return rowAction{createRecord: true, name: bare}, nil
	}

	return rowAction{createRecord: true, name: name}, nil
}

// finish returns the accumulated groups. It fails if the input ended while a
// First-marker range was still open.
func (t *rangeTracker) finish() ([]section.GroupEntry, error) {
	if t.state == trackerInRange {
		return nil, fmt.Errorf("%w: range opened at %#06x", errs.ErrUnterminatedRange, t.rangeStart)
	}

	return t.groups, nil
}

// cutFirstMarker strips the First-marker annotation, returning the bare range
// name and whether the name was a First marker at all.
func cutFirstMarker(name string) (string, bool) {
	if strings.HasPrefix(name, "<") && strings.HasSuffix(name, firstMarkerSuffix) {
		return name[1 : len(name)-len(firstMarkerSuffix)], true
	}

	return name, false
}

func isLastMarker(name string) bool {
	return strings.HasPrefix(name, "<") && strings.HasSuffix(name, lastMarkerSuffix)
}
