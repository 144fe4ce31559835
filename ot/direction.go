package ot

import (
	"fmt"

	"github.com/go-text/typesetting/di"
	"golang.org/x/text/unicode/bidi"
)

// --- Direction -------------------------------------------------------------

// Direction is the flow direction of a run of text. It determines the axis
// along which glyphs advance, and whether positions increase or decrease
// while advancing.
type Direction uint8

// Text directions. The zero value is LeftToRight.
const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

var directionNames = [...]string{"ltr", "rtl", "ttb", "btt"}

// ParseDirection reads a direction from s.
//
// Only the first character of s is inspected, ignoring case:
// 'l' is LeftToRight, 'r' is RightToLeft, 't' is TopToBottom and 'b' is BottomToTop.
// This is intentionally lenient and lets clients pass human-readable names like
// "right-to-left" as well as "rtl". Anything following the first character is
// not validated.
//
// An empty s or an unknown first character will result in an error wrapping
// ErrUnrecognizedDirection.
func ParseDirection(s string) (Direction, error) {
	if s == "" {
		return LeftToRight, fmt.Errorf("%w: empty input", ErrUnrecognizedDirection)
	}
	switch s[0] {
	case 'l', 'L':
		return LeftToRight, nil
	case 'r', 'R':
		return RightToLeft, nil
	case 't', 'T':
		return TopToBottom, nil
	case 'b', 'B':
		return BottomToTop, nil
	}
	tracer().Debugf("cannot parse direction from %q", s)
	return LeftToRight, fmt.Errorf("%w: %q", ErrUnrecognizedDirection, s)
}

// DirectionFromBidi maps a direction of package golang.org/x/text/unicode/bidi
// to a horizontal Direction. Mixed and neutral directions are considered
// left-to-right.
func DirectionFromBidi(d bidi.Direction) Direction {
	if d == bidi.RightToLeft {
		return RightToLeft
	}
	return LeftToRight
}

// DirectionFromGoText maps a direction of package github.com/go-text/typesetting/di.
// The second return value is false if d is none of the four plain directions, e.g. if
// it carries a sideways flag.
func DirectionFromGoText(d di.Direction) (Direction, bool) {
	switch d {
	case di.DirectionLTR:
		return LeftToRight, true
	case di.DirectionRTL:
		return RightToLeft, true
	case di.DirectionTTB:
		return TopToBottom, true
	case di.DirectionBTT:
		return BottomToTop, true
	}
	return LeftToRight, false
}

// String returns one of "ltr", "rtl", "ttb" or "btt".
func (d Direction) String() string {
	if !d.IsValid() {
		return "invalid"
	}
	return directionNames[d]
}

// IsValid is false for values outside of the four defined directions.
func (d Direction) IsValid() bool {
	return d <= BottomToTop
}

// IsHorizontal is true for LeftToRight and RightToLeft.
func (d Direction) IsHorizontal() bool {
	return d == LeftToRight || d == RightToLeft
}

// IsVertical is true for TopToBottom and BottomToTop.
func (d Direction) IsVertical() bool {
	return !d.IsHorizontal()
}

// IsForward is true for directions which advance in the direction of increasing
// coordinates, i.e. LeftToRight and TopToBottom.
func (d Direction) IsForward() bool {
	return d == LeftToRight || d == TopToBottom
}

// IsBackward is true for RightToLeft and BottomToTop.
func (d Direction) IsBackward() bool {
	return !d.IsForward()
}

// Reverse returns the opposite direction on the same axis.
func (d Direction) Reverse() Direction {
	switch d {
	case LeftToRight:
		return RightToLeft
	case RightToLeft:
		return LeftToRight
	case TopToBottom:
		return BottomToTop
	case BottomToTop:
		return TopToBottom
	}
	return d
}

// Bidi maps d to a direction of package golang.org/x/text/unicode/bidi.
// Vertical directions have no bidi counterpart and return false.
func (d Direction) Bidi() (bidi.Direction, bool) {
	switch d {
	case LeftToRight:
		return bidi.LeftToRight, true
	case RightToLeft:
		return bidi.RightToLeft, true
	}
	return bidi.LeftToRight, false
}

// GoText maps d to a direction of package github.com/go-text/typesetting/di.
func (d Direction) GoText() di.Direction {
	switch d {
	case RightToLeft:
		return di.DirectionRTL
	case TopToBottom:
		return di.DirectionTTB
	case BottomToTop:
		return di.DirectionBTT
	}
	return di.DirectionLTR
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("cannot marshal direction value %d", uint8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, using ParseDirection.
func (d *Direction) UnmarshalText(text []byte) error {
	dir, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = dir
	return nil
}
