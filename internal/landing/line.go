// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/landing/line.go
// Summary: Styled text lines produced by page sections.

package landing

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// SegmentKind selects how the renderer styles a segment.
type SegmentKind int

const (
	KindText SegmentKind = iota
	KindMuted
	KindTitle
	KindAccent
	KindHeadline
	KindButton
	KindButtonFocused
	KindHeader
)

// Segment is a run of text with one style.
type Segment struct {
	Text string
	Kind SegmentKind
}

// Line is one centered row of content.
type Line struct {
	Segments []Segment
}

// Text builds a single-segment line.
func Text(kind SegmentKind, s string) Line {
	return Line{Segments: []Segment{{Text: s, Kind: kind}}}
}

// Width returns the display width of the line in cells.
func (l Line) Width() int {
	w := 0
	for _, seg := range l.Segments {
		w += runewidth.StringWidth(seg.Text)
	}
	return w
}

// String flattens the line, mostly for tests and logs.
func (l Line) String() string {
	var b strings.Builder
	for _, seg := range l.Segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// wrap splits text into lines no wider than width cells.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curW := 0
	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			word = runewidth.Truncate(word, width, "…")
			ww = runewidth.StringWidth(word)
		}
		if curW > 0 && curW+1+ww > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(word)
		curW += ww
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
