// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/landing/actions.go
// Summary: Call-to-action handlers: sign-in redirect or anchor scrolling.

package landing

import (
	"context"
	"log"
)

// RouteAuth is where anonymous visitors are sent by "Start Your Journey".
const RouteAuth = "/auth"

// Session reports the signed-in user, or "" for anonymous visitors.
type Session interface {
	User() string
}

// Navigator leaves the landing page for another route.
type Navigator interface {
	Navigate(route string)
}

// Scroller is the part of scroll.Animator the actions need.
type Scroller interface {
	ScrollToElement(ctx context.Context, elementID string, headerOffset float64)
}

// StaticSession is a fixed user name.
type StaticSession string

func (s StaticSession) User() string { return string(s) }

// Actions wires the hero buttons to navigation and scrolling.
type Actions struct {
	Scroller     Scroller
	Session      Session
	Navigator    Navigator
	HeaderOffset float64
}

// StartJourney sends anonymous visitors to sign in and scrolls signed-in
// users to the career paths.
func (a *Actions) StartJourney(ctx context.Context) {
	if a.Session == nil || a.Session.User() == "" {
		log.Printf("Landing: no session, navigating to %s", RouteAuth)
		if a.Navigator != nil {
			a.Navigator.Navigate(RouteAuth)
		}
		return
	}
	a.Scroller.ScrollToElement(ctx, AnchorCareers, a.HeaderOffset)
}

// TakeQuiz scrolls to the quiz section.
func (a *Actions) TakeQuiz(ctx context.Context) {
	a.Scroller.ScrollToElement(ctx, AnchorQuiz, a.HeaderOffset)
}

// Activate runs the handler for a button.
func (a *Actions) Activate(ctx context.Context, c CTA) {
	switch c {
	case CTAStartJourney:
		a.StartJourney(ctx)
	case CTATakeQuiz:
		a.TakeQuiz(ctx)
	}
}
