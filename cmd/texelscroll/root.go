// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelscroll/root.go
// Summary: Root command: loads config, opens the screen and runs the landing app.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/framegrace/texelscroll/config"
	"github.com/framegrace/texelscroll/internal/landing"
)

type rootOptions struct {
	configPath string
	logFile    string
	user       string
	duration   time.Duration
	native     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "texelscroll",
		Short: "Career guidance landing page for the terminal",
		Long: `texelscroll shows the career guidance landing page in the terminal.

Tab cycles the buttons and Enter activates them. "Start Your Journey" scrolls
signed-in users to the career paths and sends everyone else to sign in.
"Take AI Quiz" scrolls to the quiz. PgUp/PgDn, arrows and the mouse wheel
scroll manually; q or Esc quits.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLanding(cmd.Context(), cmd, opts)
		},
	}

	// Overrides are persistent so `config show` reports the effective values.
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to texelscroll.json (default: user config dir)")
	flags.StringVar(&opts.user, "user", "", "Signed-in user name; empty means anonymous")
	flags.DurationVar(&opts.duration, "duration", 0, "Override the scroll animation duration")
	flags.BoolVar(&opts.native, "native", false, "Use the terminal page's native smooth scrolling")
	flags.BoolVar(&opts.verbose, "verbose", false, "Log every scroll run")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Log file (default: texelscroll.log next to the config)")

	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

// loadSettings reads the config store and applies flag overrides.
func loadSettings(cmd *cobra.Command, opts *rootOptions) (config.ScrollSettings, config.LandingSettings, error) {
	if opts.configPath != "" {
		config.SetPath(opts.configPath)
	}
	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Config: Using defaults after load error: %v", err)
	}
	s, err := cfg.Scroll()
	if err != nil {
		return s, config.LandingSettings{}, err
	}
	l := cfg.Landing()
	applyOverrides(cmd, opts, &s, &l)
	if err := s.Validate(); err != nil {
		return s, l, fmt.Errorf("flag overrides: %w", err)
	}
	return s, l, nil
}

func applyOverrides(cmd *cobra.Command, opts *rootOptions, s *config.ScrollSettings, l *config.LandingSettings) {
	flags := cmd.Flags()
	if flags.Changed("duration") {
		s.DurationMs = int(opts.duration / time.Millisecond)
	}
	if flags.Changed("native") {
		s.NativeSmooth = opts.native
	}
	if flags.Changed("user") {
		l.User = opts.user
	}
	if flags.Changed("verbose") {
		l.VerboseLogs = opts.verbose
	}
}

func setupLogging(path string) (func(), error) {
	if path == "" {
		var err error
		if path, err = config.LogPath(); err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}

func runLanding(ctx context.Context, cmd *cobra.Command, opts *rootOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("texelscroll needs an interactive terminal")
	}

	closeLog, err := setupLogging(opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Println("Landing: starting")

	scrollSettings, landingSettings, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	app := landing.NewApp(screen, landing.Options{
		Scroll:  scrollSettings,
		Landing: landingSettings,
		Logger:  log.Default(),
	})

	err = config.Watch(ctx, func(cfg config.Config) {
		s, err := cfg.Scroll()
		if err != nil {
			log.Printf("Config: Ignoring reloaded settings: %v", err)
			return
		}
		l := cfg.Landing()
		applyOverrides(cmd, opts, &s, &l)
		if err := s.Validate(); err != nil {
			log.Printf("Config: Ignoring reloaded settings: %v", err)
			return
		}
		app.UpdateSettings(s, l)
	})
	if err != nil {
		log.Printf("Config: Hot reload disabled: %v", err)
	}

	err = app.Run(ctx)
	log.Println("Landing: stopped")
	return err
}
