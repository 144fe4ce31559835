package ot

import (
	"errors"
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/bidi"
)

var allDirections = []Direction{LeftToRight, RightToLeft, TopToBottom, BottomToTop}

func TestDirectionParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	for _, c := range []struct {
		input string
		dir   Direction
	}{
		{"ltr", LeftToRight},
		{"L", LeftToRight},
		{"rtl", RightToLeft},
		{"RtL", RightToLeft},
		{"r", RightToLeft},
		{"right-to-left", RightToLeft},
		{"ttb", TopToBottom},
		{"Top to bottom", TopToBottom},
		{"btt", BottomToTop},
		{"b", BottomToTop},
		{"backwards, really", BottomToTop},
	} {
		dir, err := ParseDirection(c.input)
		if err != nil {
			t.Errorf("expected %q to parse, got error: %v", c.input, err)
			continue
		}
		if dir != c.dir {
			t.Errorf("expected %q to parse as %s, got %s", c.input, c.dir, dir)
		}
	}
}

func TestDirectionParseFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	for _, input := range []string{"", "x", " ltr", "äöü", "-rtl"} {
		_, err := ParseDirection(input)
		if !errors.Is(err, ErrUnrecognizedDirection) {
			t.Errorf("expected %q to fail with unrecognized direction, got %v", input, err)
		}
	}
}

func TestDirectionFormat(t *testing.T) {
	assert.Equal(t, "ltr", LeftToRight.String())
	assert.Equal(t, "rtl", RightToLeft.String())
	assert.Equal(t, "ttb", TopToBottom.String())
	assert.Equal(t, "btt", BottomToTop.String())
	assert.Equal(t, "invalid", Direction(17).String())
	for _, d := range allDirections {
		parsed, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
}

func TestDirectionPredicates(t *testing.T) {
	assert.True(t, LeftToRight.IsHorizontal())
	assert.True(t, RightToLeft.IsHorizontal())
	assert.True(t, TopToBottom.IsVertical())
	assert.True(t, BottomToTop.IsVertical())
	assert.True(t, LeftToRight.IsForward())
	assert.True(t, TopToBottom.IsForward())
	assert.True(t, RightToLeft.IsBackward())
	assert.True(t, BottomToTop.IsBackward())
	for _, d := range allDirections {
		assert.NotEqual(t, d.IsHorizontal(), d.IsVertical(), "axis of %s", d)
		assert.NotEqual(t, d.IsForward(), d.IsBackward(), "polarity of %s", d)
		assert.True(t, d.IsValid())
	}
	assert.False(t, Direction(4).IsValid())
}

func TestDirectionReverse(t *testing.T) {
	assert.Equal(t, BottomToTop, TopToBottom.Reverse())
	assert.Equal(t, TopToBottom, BottomToTop.Reverse())
	assert.Equal(t, RightToLeft, LeftToRight.Reverse())
	assert.Equal(t, LeftToRight, RightToLeft.Reverse())
	for _, d := range allDirections {
		assert.Equal(t, d, d.Reverse().Reverse())
		assert.NotEqual(t, d, d.Reverse())
		assert.Equal(t, d.IsHorizontal(), d.Reverse().IsHorizontal(), "reverse keeps the axis of %s", d)
		assert.NotEqual(t, d.IsForward(), d.Reverse().IsForward(), "reverse flips polarity of %s", d)
	}
}

func TestDirectionBidi(t *testing.T) {
	b, ok := LeftToRight.Bidi()
	assert.True(t, ok)
	assert.Equal(t, bidi.LeftToRight, b)
	b, ok = RightToLeft.Bidi()
	assert.True(t, ok)
	assert.Equal(t, bidi.RightToLeft, b)
	_, ok = TopToBottom.Bidi()
	assert.False(t, ok)
	_, ok = BottomToTop.Bidi()
	assert.False(t, ok)
	//
	assert.Equal(t, RightToLeft, DirectionFromBidi(bidi.RightToLeft))
	assert.Equal(t, LeftToRight, DirectionFromBidi(bidi.LeftToRight))
	assert.Equal(t, LeftToRight, DirectionFromBidi(bidi.Mixed))
	assert.Equal(t, LeftToRight, DirectionFromBidi(bidi.Neutral))
}

func TestDirectionGoText(t *testing.T) {
	assert.Equal(t, di.DirectionLTR, LeftToRight.GoText())
	assert.Equal(t, di.DirectionRTL, RightToLeft.GoText())
	assert.Equal(t, di.DirectionTTB, TopToBottom.GoText())
	assert.Equal(t, di.DirectionBTT, BottomToTop.GoText())
	for _, d := range allDirections {
		back, ok := DirectionFromGoText(d.GoText())
		require.True(t, ok)
		assert.Equal(t, d, back)
		assert.Equal(t, d.IsVertical(), d.GoText().IsVertical())
	}
}

func TestDirectionText(t *testing.T) {
	text, err := RightToLeft.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "rtl", string(text))
	_, err = Direction(9).MarshalText()
	assert.Error(t, err)
	//
	var d Direction
	require.NoError(t, d.UnmarshalText([]byte("Bottom-to-top")))
	assert.Equal(t, BottomToTop, d)
	err = d.UnmarshalText([]byte("?"))
	assert.ErrorIs(t, err, ErrUnrecognizedDirection)
	assert.Equal(t, BottomToTop, d, "failed unmarshal leaves value untouched")
}
