// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/landing/app.go
// Summary: Terminal landing page: event loop, frame pacing and CTA wiring.
// Usage: cmd/texelscroll creates an App on a tcell screen and calls Run.
// Notes: Scroll frames are pumped from the event loop, so every viewport
// write happens on the loop goroutine.

package landing

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/config"
	"github.com/framegrace/texelscroll/scroll"
)

const wheelRows = 3

// Options configures an App.
type Options struct {
	Title   string
	Scroll  config.ScrollSettings
	Landing config.LandingSettings
	Logger  *log.Logger
}

// App hosts the landing page on a tcell screen.
type App struct {
	screen   tcell.Screen
	page     *Page
	sched    *scroll.LoopScheduler
	animator *scroll.Animator
	actions  *Actions
	renderer *Renderer
	logger   *log.Logger
	verbose  bool
	interval time.Duration

	ctx      context.Context
	route    string
	status   string
	dirty    bool
	settings chan settingsUpdate
}

type settingsUpdate struct {
	scroll  config.ScrollSettings
	landing config.LandingSettings
}

// NewApp builds the page, animator and renderer for screen.
func NewApp(screen tcell.Screen, opts Options) *App {
	if opts.Title == "" {
		opts.Title = "CareerPath ICT"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	now := time.Now()
	hero := NewHero()
	hero.Start(now)

	a := &App{
		screen:   screen,
		page:     NewPage(hero, DefaultSections()...),
		sched:    scroll.NewLoopScheduler(now),
		logger:   opts.Logger,
		verbose:  opts.Landing.VerboseLogs,
		ctx:      context.Background(),
		dirty:    true,
		settings: make(chan settingsUpdate, 1),
	}
	a.actions = &Actions{Navigator: a}
	a.renderer = NewRenderer(opts.Title, 0)
	a.applyLanding(opts.Landing)
	a.applySettings(opts.Scroll)

	w, h := screen.Size()
	a.page.Resize(w, h)
	return a
}

// Page exposes the page, mainly for tests and tools.
func (a *App) Page() *Page { return a.page }

// Animator exposes the scroll animator in use.
func (a *App) Animator() *scroll.Animator { return a.animator }

// Route returns the last route navigated to, "" while on the landing page.
func (a *App) Route() string { return a.route }

// Navigate implements Navigator. Leaving the page is shown on the status row.
func (a *App) Navigate(route string) {
	a.route = route
	a.status = fmt.Sprintf("→ %s  sign in to continue your journey", route)
	a.dirty = true
}

// UpdateSettings queues new settings; Run applies them between frames.
// Only the latest queued update is kept.
func (a *App) UpdateSettings(s config.ScrollSettings, l config.LandingSettings) {
	u := settingsUpdate{scroll: s, landing: l}
	select {
	case a.settings <- u:
	default:
		// replace the queued value
		select {
		case <-a.settings:
		default:
		}
		a.settings <- u
	}
}

func (a *App) applyUpdate(u settingsUpdate) {
	a.applyLanding(u.landing)
	a.applySettings(u.scroll)
	a.logger.Printf("Landing: applied settings %+v %+v", u.scroll, u.landing)
}

// applyLanding must run before applySettings so the animator picks up verbose.
func (a *App) applyLanding(l config.LandingSettings) {
	a.verbose = l.VerboseLogs
	a.actions.Session = StaticSession(l.User)
}

func (a *App) applySettings(s config.ScrollSettings) {
	if a.animator != nil {
		a.animator.Close()
	}
	a.interval = s.FrameInterval()
	if a.interval <= 0 {
		a.interval = scroll.DefaultFrameInterval
	}
	a.animator = scroll.NewAnimator(a.page, a.page,
		scroll.WithScheduler(a.sched),
		scroll.WithDuration(s.Duration()),
		scroll.WithEasing(s.EasingFunc()),
		scroll.WithNativeDisabled(!s.NativeSmooth),
		scroll.WithLogger(a.logger, a.verbose),
		scroll.WithOnDone(func(r scroll.Result) {
			if a.verbose {
				a.logger.Printf("Landing: scroll toward %.1f ended at %.1f (completed=%v)", r.Target, r.Position, r.Completed)
			}
			a.dirty = true
		}),
	)
	a.actions.Scroller = a.animator
	headerRows := int(math.Ceil(s.HeaderRows()))
	a.actions.HeaderOffset = float64(headerRows)
	a.renderer.HeaderRows = headerRows
	a.page.SetHeaderRows(headerRows)
	a.dirty = true
}

// HandleEvent processes one tcell event. It returns false when the app should exit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.page.Resize(w, h)
		a.screen.Sync()
		a.dirty = true
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		switch ev.Buttons() {
		case tcell.WheelUp:
			a.manualScroll(-wheelRows)
		case tcell.WheelDown:
			a.manualScroll(wheelRows)
		}
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	_, h := a.screen.Size()
	page := float64(max(1, h-a.renderer.HeaderRows))

	switch ev.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab, tcell.KeyRight:
		a.page.CycleFocus(true)
	case tcell.KeyBacktab, tcell.KeyLeft:
		a.page.CycleFocus(false)
	case tcell.KeyEnter:
		a.status = ""
		a.actions.Activate(a.ctx, a.page.Focus())
	case tcell.KeyPgDn:
		a.manualScroll(page)
	case tcell.KeyPgUp:
		a.manualScroll(-page)
	case tcell.KeyDown:
		a.manualScroll(1)
	case tcell.KeyUp:
		a.manualScroll(-1)
	case tcell.KeyHome:
		a.animator.ScrollTo(a.ctx, 0)
	case tcell.KeyEnd:
		a.animator.ScrollTo(a.ctx, a.page.MaxOffset())
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'j':
			a.manualScroll(1)
		case 'k':
			a.manualScroll(-1)
		}
	}
	a.dirty = true
	return true
}

// manualScroll gives the user control back from any running animation.
func (a *App) manualScroll(delta float64) {
	a.animator.Cancel()
	a.page.ScrollBy(delta)
	a.dirty = true
}

// Frame pumps scroll callbacks, advances page animations and redraws when
// something changed. It reports whether a redraw happened.
func (a *App) Frame(now time.Time) bool {
	pumped := a.sched.Pump(now)
	moving := a.page.Tick(now)
	if pumped == 0 && !moving && !a.dirty {
		return false
	}
	a.dirty = false
	a.renderer.Draw(a.screen, a.page.Visible(), a.status)
	return true
}

// Run drives the event loop until ctx is done or the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.ctx = ctx
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	select {
	case u := <-a.settings:
		a.applyUpdate(u)
	default:
	}
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	a.Frame(time.Now())

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				a.logger.Printf("Landing: exit requested")
				return nil
			}
			a.Frame(time.Now())
		case u := <-a.settings:
			a.applyUpdate(u)
			ticker.Reset(a.interval)
		case now := <-ticker.C:
			a.Frame(now)
		}
	}
}
