// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session orchestrates the session lifecycle against the backend.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/jeranaias/helpdesk-tui/internal/api"
	"github.com/jeranaias/helpdesk-tui/internal/model"
	"github.com/jeranaias/helpdesk-tui/internal/store"
)

// ErrNotReady indicates an operation that requires a Ready session was
// attempted while the controller was still bootstrapping.
var ErrNotReady = errors.New("session is not ready")

// =============================================================================
// STATE
// =============================================================================

// State is the lifecycle state of the session controller.
type State int

const (
	StateUninitialized State = iota
	StateRestoring
	StateCreating
	StateReady
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRestoring:
		return "restoring"
	case StateCreating:
		return "creating"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Result is the outcome of a bootstrap or new-session transition: the active
// session id and the messages to seed the conversation with. Restored is
// true when the messages came from the backend's history rather than a
// fresh, empty session.
type Result struct {
	SessionID string
	Messages  []*model.Message
	Restored  bool
}

// Controller owns the session id and drives restore-or-create transitions.
//
// Methods run synchronously and are safe for use from a Bubble Tea command
// goroutine; state reads from the UI goroutine go through the mutex.
type Controller struct {
	mu     sync.Mutex
	store  *store.Store
	client *api.Client
	state  State
	id     string
}

// NewController creates a controller over the given store and client.
func NewController(st *store.Store, client *api.Client) *Controller {
	return &Controller{
		store:  st,
		client: client,
		state:  StateUninitialized,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Ready reports whether sends and per-message actions are permitted.
func (c *Controller) Ready() bool {
	return c.State() == StateReady
}

// ID returns the active session id, or "" before Ready.
func (c *Controller) ID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

// RequireID returns the active session id, or ErrNotReady before Ready.
// Callers gate sends and per-message actions on it with errors.Is.
func (c *Controller) RequireID() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReady {
		return "", ErrNotReady
	}
	return c.id, nil
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// Bootstrap performs the startup transition: restore the persisted session
// if one exists, otherwise create a fresh one. A failed restore (unknown id,
// any transport error) discards the persisted id and falls through to
// creation rather than surfacing the error.
func (c *Controller) Bootstrap(ctx context.Context) (*Result, error) {
	id, ok := c.store.SessionID()
	if !ok {
		return c.create(ctx)
	}

	c.setState(StateRestoring, id)

	history, err := c.client.FetchHistory(ctx, id)
	if err != nil {
		// The one automatic-recovery path: drop the stale id and start over.
		log.Printf("session restore failed for %s, creating new session: %v", id, err)
		if clearErr := c.store.ClearSessionID(); clearErr != nil {
			log.Printf("failed to clear stale session id: %v", clearErr)
		}
		return c.create(ctx)
	}

	c.setState(StateReady, id)
	return &Result{
		SessionID: id,
		Messages:  model.SeedFromHistory(history),
		Restored:  true,
	}, nil
}

// StartNew abandons the current session and creates a fresh one. The caller
// discards unsent input and the in-memory conversation by seeding from the
// returned (empty) message list.
func (c *Controller) StartNew(ctx context.Context) (*Result, error) {
	return c.create(ctx)
}

// create runs the creating path: new backend session, persist id, Ready.
func (c *Controller) create(ctx context.Context) (*Result, error) {
	c.setState(StateCreating, "")

	id, err := c.client.CreateSession(ctx)
	if err != nil {
		c.setState(StateUninitialized, "")
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := c.store.SetSessionID(id); err != nil {
		// Persistence failure is not fatal to the live session; the id just
		// will not survive a restart.
		log.Printf("failed to persist session id: %v", err)
	}

	c.setState(StateReady, id)
	return &Result{SessionID: id, Messages: nil, Restored: false}, nil
}

func (c *Controller) setState(s State, id string) {
	c.mu.Lock()
	c.state = s
	c.id = id
	c.mu.Unlock()
}
