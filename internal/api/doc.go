// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the typed HTTP client for the support-agent backend.
//
// The backend exposes a small REST surface: session creation, history
// retrieval, chat, feedback, and escalation. This package wraps each
// endpoint in one typed method and normalizes every failure (network error,
// non-2xx status, malformed body) into a single *TransportError so callers
// branch only on success/failure, never on status codes.
//
// # Key Types
//
//   - Client: HTTP client with builder-style options
//   - ChatReply: Assistant answer with optional confidence and message id
//   - Ticket: Escalation ticket reference returned by the backend
//   - TransportError: Uniform failure wrapper for all five operations
//
// # Usage
//
// Create a client and start a session:
//
//	client := api.NewClient("http://localhost:8000")
//	id, err := client.CreateSession(ctx)
//	if err != nil {
//	    // err is always a *TransportError here
//	}
package api
