// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/landing/page.go
// Summary: Vertically scrolling landing page with anchored sections.
// Usage: Serves as scroll.Document, scroll.Viewport and scroll.NativeScroller.
// Notes: Offsets are in rows; fractional offsets round when drawn.

package landing

import (
	"math"
	"sync"
	"time"

	"github.com/framegrace/texelscroll/internal/effects"
)

// Anchors on the page.
const (
	AnchorHero    = "hero"
	AnchorCareers = "careers"
	AnchorQuiz    = "quiz"
)

const (
	nativeKey      = "offset"
	nativeDuration = 350 * time.Millisecond
)

// Section is a titled block of static content.
type Section struct {
	ID    string
	Title string
	Body  []string
}

func (s *Section) lines(width int) []Line {
	lines := []Line{{}, Text(KindTitle, s.Title), {}}
	for _, para := range s.Body {
		if para == "" {
			lines = append(lines, Line{})
			continue
		}
		for _, l := range wrap(para, min(width-4, 72)) {
			lines = append(lines, Text(KindText, l))
		}
	}
	return append(lines, Line{})
}

type block struct {
	id    string
	top   int
	lines []Line
}

// Page lays out the hero followed by the content sections. Every block
// fills at least one screen so each anchor can reach the top. The hero
// starts below the fixed header so nothing of it is hidden at offset 0.
type Page struct {
	mu         sync.Mutex
	hero       *Hero
	sections   []*Section
	focus      CTA
	headerRows int

	width, height int
	blocks        []block
	contentHeight int

	offset  float64
	native  *effects.Timeline
	gliding bool
	now     func() time.Time
}

// NewPage creates a page. Call Resize before use.
func NewPage(hero *Hero, sections ...*Section) *Page {
	return &Page{
		hero:     hero,
		sections: sections,
		native:   effects.NewTimeline(0),
		now:      time.Now,
	}
}

// Resize sets the viewport size in cells and re-lays out the page.
func (p *Page) Resize(width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width, p.height = width, height
	p.layoutLocked(p.now())
	p.offset = p.clampLocked(p.offset)
}

// SetHeaderRows reserves rows at the top of the hero for the fixed header.
func (p *Page) SetHeaderRows(rows int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.headerRows = max(rows, 0)
	p.layoutLocked(p.now())
	p.offset = p.clampLocked(p.offset)
}

// Layout rebuilds the blocks for now; the hero reveal changes every frame.
func (p *Page) Layout(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.layoutLocked(now)
}

func (p *Page) layoutLocked(now time.Time) {
	p.blocks = p.blocks[:0]
	top := 0
	if p.hero != nil {
		lines := make([]Line, p.headerRows)
		lines = append(lines, p.hero.Lines(now, p.width, p.focus)...)
		for len(lines) < p.height {
			lines = append(lines, Line{})
		}
		p.blocks = append(p.blocks, block{id: AnchorHero, top: top, lines: lines})
		top += len(lines)
	}
	for _, s := range p.sections {
		lines := s.lines(p.width)
		for len(lines) < p.height {
			lines = append(lines, Line{})
		}
		p.blocks = append(p.blocks, block{id: s.ID, top: top, lines: lines})
		top += len(lines)
	}
	p.contentHeight = top
}

// ElementTop implements scroll.Document.
func (p *Page) ElementTop(id string) (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range p.blocks {
		if b.id == id {
			return float64(b.top), true
		}
	}
	return 0, false
}

// ScrollPosition implements scroll.Viewport.
func (p *Page) ScrollPosition() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offset
}

// SetScrollPosition implements scroll.Viewport. The offset is clamped to
// the scrollable range.
func (p *Page) SetScrollPosition(pos float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopGlideLocked()
	p.offset = p.clampLocked(pos)
}

// SmoothScrollTo implements scroll.NativeScroller with the page's own
// short ease-out glide.
func (p *Page) SmoothScrollTo(target float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.now()
	// seed from the current offset so the glide starts where we are
	p.native.AnimateToWithOptions(nativeKey, p.offset, effects.AnimateOptions{}, now)
	p.native.AnimateToWithOptions(nativeKey, p.clampLocked(target), effects.AnimateOptions{
		Duration: nativeDuration,
		Easing:   effects.EaseOutCubic,
	}, now)
	p.gliding = true
}

// ScrollBy moves the viewport by delta rows and stops any native glide.
func (p *Page) ScrollBy(delta float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopGlideLocked()
	p.offset = p.clampLocked(math.Round(p.offset) + delta)
}

// Tick advances the native glide and the hero layout. It reports whether
// anything is still moving.
func (p *Page) Tick(now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gliding {
		p.offset = p.clampLocked(p.native.Get(nativeKey, now))
		if !p.native.IsAnimating(nativeKey, now) {
			p.stopGlideLocked()
		}
	}
	p.layoutLocked(now)
	return p.gliding || (p.hero != nil && p.hero.Animating(now))
}

// Gliding reports whether a native smooth scroll is in progress.
func (p *Page) Gliding() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gliding
}

func (p *Page) stopGlideLocked() {
	p.gliding = false
	p.native.Reset(nativeKey)
}

// Focus returns the focused hero button.
func (p *Page) Focus() CTA {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.focus
}

// CycleFocus moves the CTA focus forward or backward.
func (p *Page) CycleFocus(forward bool) CTA {
	p.mu.Lock()
	defer p.mu.Unlock()
	if forward {
		p.focus = (p.focus + 1) % ctaCount
	} else {
		p.focus = (p.focus + ctaCount - 1) % ctaCount
	}
	return p.focus
}

// ContentHeight returns the total laid-out height in rows.
func (p *Page) ContentHeight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.contentHeight
}

// MaxOffset returns the largest valid scroll offset.
func (p *Page) MaxOffset() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxOffsetLocked()
}

// Visible returns the rows in the viewport starting at the rounded offset.
func (p *Page) Visible() []Line {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := int(math.Round(p.offset))
	out := make([]Line, 0, p.height)
	for _, b := range p.blocks {
		for i, l := range b.lines {
			row := b.top + i
			if row < start {
				continue
			}
			if row >= start+p.height {
				return out
			}
			out = append(out, l)
		}
	}
	return out
}

func (p *Page) maxOffsetLocked() float64 {
	return math.Max(0, float64(p.contentHeight-p.height))
}

func (p *Page) clampLocked(pos float64) float64 {
	return math.Min(math.Max(pos, 0), p.maxOffsetLocked())
}
