// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/landing/hero.go
// Summary: Hero banner with a staggered headline reveal, CTAs and stats.
// Usage: Section 0 of the landing page; lines are rebuilt every frame.

package landing

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelscroll/internal/effects"
)

// HeadlineLine is one line of the animated headline. Each word fades in
// Stagger after the previous one, starting Delay after the hero starts.
type HeadlineLine struct {
	Text     string
	Delay    time.Duration
	Stagger  time.Duration
	Duration time.Duration
}

// Stat is a figure shown under the call-to-action buttons.
type Stat struct {
	Value string
	Label string
}

// CTA identifies a hero button.
type CTA int

const (
	CTAStartJourney CTA = iota
	CTATakeQuiz
	ctaCount
)

func (c CTA) String() string {
	switch c {
	case CTAStartJourney:
		return "Start Your Journey →"
	case CTATakeQuiz:
		return "Take AI Quiz"
	}
	return fmt.Sprintf("CTA(%d)", int(c))
}

const statStagger = 200 * time.Millisecond

// Hero holds the banner copy and its reveal timeline.
type Hero struct {
	Badge    string
	Headline []HeadlineLine
	Tagline  string
	Stats    []Stat

	timeline *effects.Timeline
}

// NewHero returns the career-guidance banner.
func NewHero() *Hero {
	return &Hero{
		Badge: "✦ AI-Powered Career Discovery",
		Headline: []HeadlineLine{
			{Text: "Discover Your", Delay: 500 * time.Millisecond, Stagger: 100 * time.Millisecond, Duration: 1000 * time.Millisecond},
			{Text: "Perfect ICT Career", Delay: 1200 * time.Millisecond, Stagger: 80 * time.Millisecond, Duration: 1200 * time.Millisecond},
		},
		Tagline: "Unlock your potential with AI-driven career recommendations, personalized learning paths, and hands-on projects tailored for Sri Lankan ICT undergraduates.",
		Stats: []Stat{
			{Value: "15+", Label: "Career Paths"},
			{Value: "2,500+", Label: "Students Helped"},
			{Value: "94%", Label: "Success Rate"},
		},
		timeline: effects.NewTimeline(0),
	}
}

// Start kicks off the headline and stat reveal at now.
func (h *Hero) Start(now time.Time) {
	h.timeline.Clear()
	for li, line := range h.Headline {
		for wi := range strings.Fields(line.Text) {
			h.timeline.AnimateToWithOptions(wordKey(li, wi), 1, effects.AnimateOptions{
				Duration: line.Duration,
				Delay:    line.Delay + time.Duration(wi)*line.Stagger,
				Easing:   effects.EaseOutCubic,
			}, now)
		}
	}
	for i := range h.Stats {
		h.timeline.AnimateToWithOptions(statKey(i), 1, effects.AnimateOptions{
			Duration: 300 * time.Millisecond,
			Delay:    time.Duration(i) * statStagger,
			Easing:   effects.EaseSmoothstep,
		}, now)
	}
}

// Animating reports whether any part of the reveal is still moving.
func (h *Hero) Animating(now time.Time) bool {
	return h.timeline.HasActiveAnimations(now)
}

// Lines lays out the banner for width cells with the focused CTA highlighted.
func (h *Hero) Lines(now time.Time, width int, focus CTA) []Line {
	lines := []Line{
		{},
		Text(KindAccent, h.Badge),
		{},
	}
	for li, hl := range h.Headline {
		lines = append(lines, h.headline(now, li, hl))
	}
	lines = append(lines, Line{})
	for _, s := range wrap(h.Tagline, min(width-4, 72)) {
		lines = append(lines, Text(KindMuted, s))
	}
	lines = append(lines, Line{}, h.buttons(focus), Line{})
	lines = append(lines, h.stats(now)...)
	return lines
}

func (h *Hero) headline(now time.Time, li int, hl HeadlineLine) Line {
	var segs []Segment
	for wi, word := range strings.Fields(hl.Text) {
		if wi > 0 {
			segs = append(segs, Segment{Text: " ", Kind: KindHeadline})
		}
		segs = append(segs, Segment{Text: reveal(word, h.timeline.Get(wordKey(li, wi), now)), Kind: KindHeadline})
	}
	return Line{Segments: segs}
}

func (h *Hero) buttons(focus CTA) Line {
	var segs []Segment
	for c := CTA(0); c < ctaCount; c++ {
		if c > 0 {
			segs = append(segs, Segment{Text: "   "})
		}
		kind := KindButton
		if c == focus {
			kind = KindButtonFocused
		}
		segs = append(segs, Segment{Text: "[ " + c.String() + " ]", Kind: kind})
	}
	return Line{Segments: segs}
}

func (h *Hero) stats(now time.Time) []Line {
	values := Line{}
	labels := Line{}
	for i, st := range h.Stats {
		cell := max(runewidth.StringWidth(st.Value), runewidth.StringWidth(st.Label)) + 4
		shown := h.timeline.Get(statKey(i), now) >= 0.5
		v, l := "", ""
		if shown {
			v, l = st.Value, st.Label
		}
		values.Segments = append(values.Segments, Segment{Text: center(v, cell), Kind: KindTitle})
		labels.Segments = append(labels.Segments, Segment{Text: center(l, cell), Kind: KindMuted})
	}
	return []Line{values, labels}
}

// reveal shows the leading fraction of word, padded to its full width so
// the line does not shift while it animates.
func reveal(word string, progress float64) string {
	w := runewidth.StringWidth(word)
	n := int(effects.Clamp01(progress)*float64(w) + 0.5)
	return runewidth.FillRight(runewidth.Truncate(word, n, ""), w)
}

func center(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func wordKey(line, word int) string { return fmt.Sprintf("headline/%d/%d", line, word) }
func statKey(i int) string          { return fmt.Sprintf("stat/%d", i) }
