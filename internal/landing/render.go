// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/landing/render.go
// Summary: Draws landing page lines, the fixed header and a status row to a tcell screen.

package landing

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer paints page rows onto a tcell.Screen.
type Renderer struct {
	Title      string
	HeaderRows int
	Base       tcell.Style
	styles     map[SegmentKind]tcell.Style
}

// NewRenderer creates a renderer whose fixed header covers headerRows rows.
func NewRenderer(title string, headerRows int) *Renderer {
	base := tcell.StyleDefault.Foreground(tcell.NewRGBColor(205, 214, 244)).Background(tcell.NewRGBColor(30, 30, 46))
	return &Renderer{
		Title:      title,
		HeaderRows: headerRows,
		Base:       base,
		styles: map[SegmentKind]tcell.Style{
			KindText:          base,
			KindMuted:         base.Foreground(tcell.NewRGBColor(147, 153, 178)),
			KindTitle:         base.Foreground(tcell.NewRGBColor(137, 180, 250)).Bold(true),
			KindAccent:        base.Foreground(tcell.NewRGBColor(249, 226, 175)),
			KindHeadline:      base.Foreground(tcell.NewRGBColor(203, 166, 247)).Bold(true),
			KindButton:        base.Foreground(tcell.NewRGBColor(166, 227, 161)),
			KindButtonFocused: base.Foreground(tcell.NewRGBColor(30, 30, 46)).Background(tcell.NewRGBColor(166, 227, 161)).Bold(true),
			KindHeader:        base.Background(tcell.NewRGBColor(49, 50, 68)).Bold(true),
		},
	}
}

// Draw renders lines below the header and status on the last row.
func (r *Renderer) Draw(screen tcell.Screen, lines []Line, status string) {
	w, h := screen.Size()
	screen.SetStyle(r.Base)
	screen.Clear()

	for y, line := range lines {
		if y >= h {
			break
		}
		x := (w - line.Width()) / 2
		if x < 0 {
			x = 0
		}
		for _, seg := range line.Segments {
			x = r.put(screen, x, y, w, seg.Text, r.style(seg.Kind))
		}
	}

	header := r.style(KindHeader)
	for y := 0; y < r.HeaderRows && y < h; y++ {
		for x := 0; x < w; x++ {
			screen.SetContent(x, y, ' ', nil, header)
		}
	}
	if r.HeaderRows > 0 {
		r.put(screen, 2, (r.HeaderRows-1)/2, w, r.Title, header)
	}

	if status != "" && h > r.HeaderRows {
		r.put(screen, 1, h-1, w, runewidth.Truncate(status, w-2, "…"), r.style(KindAccent))
	}
	screen.Show()
}

func (r *Renderer) style(kind SegmentKind) tcell.Style {
	if st, ok := r.styles[kind]; ok {
		return st
	}
	return r.Base
}

func (r *Renderer) put(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if x+cw > maxX {
			break
		}
		screen.SetContent(x, y, ch, nil, style)
		x += cw
	}
	return x
}
