// helpdesk TUI - A terminal client for the support-agent backend.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jeranaias/helpdesk-tui/internal/api"
	"github.com/jeranaias/helpdesk-tui/internal/config"
	"github.com/jeranaias/helpdesk-tui/internal/session"
	"github.com/jeranaias/helpdesk-tui/internal/store"
	"github.com/jeranaias/helpdesk-tui/internal/ui/chat"
	"github.com/jeranaias/helpdesk-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to config file (default ~/.helpdesk/config.toml)")
		backendURL  = flag.String("backend", "", "backend base URL (overrides config)")
		userID      = flag.String("user", "", "optional user id sent on session creation")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("helpdesk-tui %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	// The TUI owns the terminal; refuse to start when stdout is a pipe.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "helpdesk-tui requires an interactive terminal")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *backendURL != "" {
		cfg.Backend.BaseURL = *backendURL
	}
	if *userID != "" {
		cfg.Backend.UserID = *userID
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	closeLog := setupLogging()
	defer closeLog()

	st, err := store.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open state file: %v\n", err)
		os.Exit(1)
	}

	client := api.NewClient(cfg.Backend.BaseURL).
		WithUserID(cfg.Backend.UserID).
		WithTimeout(cfg.Timeout())

	ctrl := session.NewController(st, client)

	theme := styles.NewTheme(pickVariant(st, cfg))
	m := chat.New(theme, ctrl, client, st)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the TOML config from the given path, or the default
// location when the path is empty. A missing file yields defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadPath(path)
	}
	return config.Load()
}

// pickVariant resolves the theme preference: state file first, then config,
// then the terminal background.
func pickVariant(st *store.Store, cfg *config.Config) styles.Variant {
	if saved, ok := st.Theme(); ok {
		return styles.ParseVariant(saved)
	}
	if cfg.UI.Theme != "" {
		return styles.ParseVariant(cfg.UI.Theme)
	}
	return styles.DetectVariant()
}

// setupLogging routes the stdlib logger to a file so transport logs never
// corrupt the alternate screen. Logging is best effort; when the file cannot
// be opened the logs are discarded.
func setupLogging() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}

	dir := filepath.Join(home, ".helpdesk")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "helpdesk.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	return func() { _ = f.Close() }
}
