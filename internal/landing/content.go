// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/landing/content.go
// Summary: Default sections below the hero.

package landing

// DefaultSections returns the career paths and quiz sections.
func DefaultSections() []*Section {
	return []*Section{
		{
			ID:    AnchorCareers,
			Title: "Explore Career Paths",
			Body: []string{
				"Software Engineer: design, build and ship production systems.",
				"Data Scientist: turn raw data into models and decisions.",
				"Cybersecurity Analyst: defend networks and respond to incidents.",
				"Cloud Engineer: automate infrastructure at scale.",
				"UI/UX Designer: shape how people experience software.",
				"Network Engineer: keep organisations connected.",
				"",
				"Each path comes with a learning roadmap and hands-on projects.",
			},
		},
		{
			ID:    AnchorQuiz,
			Title: "Take the AI Career Quiz",
			Body: []string{
				"Answer a few questions about your interests, strengths and goals.",
				"We match your answers against the career paths above and suggest where to start.",
				"",
				"Press Tab to return to the buttons, or PgUp to scroll back.",
			},
		},
	}
}
