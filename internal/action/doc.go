// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package action contains the per-message feedback and escalation flows.
//
// Both flows are small state machines (Idle → Submitting → Resolved|Idle)
// that correlate a (session id, message id) pair with a user action. They
// validate everything locally before any transport call: a missing session
// or message id, an unset rating, or an already-rated message is rejected
// as a no-op at this boundary and never reaches the network. Neither flow
// retries on failure; a failed submission simply returns the flow to Idle.
package action
