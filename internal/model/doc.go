// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation state machine and message types.
//
// The Conversation owns the ordered message sequence and the pending flag.
// All mutation of the sequence funnels through its methods; the UI only reads
// state and emits intents. The sequence is append-only: messages are never
// reordered or deleted, and a user message is always followed by exactly one
// assistant entry (the reply, or an error placeholder when the send failed).
//
// # Key Types
//
//   - Conversation: Ordered messages plus the pending-send guard
//   - Message: Single message with role, content, and optional backend id
//   - Role: Message role enumeration (user, assistant)
//
// # Usage
//
// Append a user turn and reconcile the reply:
//
//	conv := model.NewConversation()
//	msg, err := conv.AppendUser("hello")
//	if err == nil {
//	    // ... call the backend, then:
//	    conv.ReconcileReply(reply)
//	}
package model
