// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides durable client-side state for the helpdesk TUI.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jeranaias/helpdesk-tui/internal/util"
)

// StateFileName is the name of the state file inside the config directory.
const StateFileName = "state.json"

// fileState is the on-disk layout of the state file.
type fileState struct {
	SessionID string `json:"session_id,omitempty"`
	Theme     string `json:"theme,omitempty"`
}

// Store reads and writes the durable client state.
//
// The state is loaded once at construction; writes rewrite the whole file
// atomically. The file is private to the user (0600): the session id is an
// opaque credential-like value and must not be world-readable.
type Store struct {
	mu    sync.Mutex
	path  string
	state fileState
}

// Open loads (or initializes) the state file at the default location,
// ~/.helpdesk/state.json.
func Open() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return OpenPath(filepath.Join(homeDir, ".helpdesk", StateFileName))
}

// OpenPath loads (or initializes) the state file at a custom path.
func OpenPath(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	// A corrupt state file is not fatal: start fresh rather than refuse to
	// launch. The worst case is one lost session id.
	if err := json.Unmarshal(data, &s.state); err != nil {
		s.state = fileState{}
	}
	return s, nil
}

// =============================================================================
// SESSION ID
// =============================================================================

// SessionID returns the persisted session id, if any.
func (s *Store) SessionID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SessionID, s.state.SessionID != ""
}

// SetSessionID persists a new session id, replacing any previous one.
func (s *Store) SetSessionID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SessionID = id
	return s.save()
}

// ClearSessionID removes the persisted session id.
func (s *Store) ClearSessionID() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SessionID = ""
	return s.save()
}

// =============================================================================
// THEME PREFERENCE
// =============================================================================

// Theme returns the persisted theme preference ("dark" or "light"), if any.
func (s *Store) Theme() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Theme, s.state.Theme != ""
}

// SetTheme persists the theme preference.
func (s *Store) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Theme = theme
	return s.save()
}

// save writes the state file atomically. Callers must hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := util.AtomicWriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
