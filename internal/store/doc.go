// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides durable client-side state for the helpdesk TUI.
//
// Two values survive restarts: the last-known backend session id and the
// theme preference. Both live in a single JSON state file under the user's
// home directory, read once at startup and written atomically on change.
// There is no expiry: a session id persists until explicitly replaced or
// cleared. All access funnels through the Store contract; nothing else in
// the program touches the state file.
package store
