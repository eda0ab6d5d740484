// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session orchestrates the session lifecycle against the backend.
//
// The Controller owns the session id and its state machine. From
// Uninitialized it enters Restoring when a persisted id is found and the
// history fetch succeeds, or Creating when no id exists or the restore
// failed; both paths end in Ready.
//
// A restore failure of any kind discards the stored id and falls through to
// creation; this is the single automatic-recovery path in the client. An
// explicit new-session intent re-enters the creating path from Ready,
// discarding the current in-memory conversation. Sends and per-message
// actions are permitted only while Ready.
package session
