// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the helpdesk TUI.

The user can flip between the dark and light theme at runtime and the choice
persists across sessions, so colors are organized as two concrete palettes
rather than terminal-adaptive pairs. A Theme is built from one Palette and
holds every Lip Gloss style the chat view needs.

# Key Types

  - Variant - Theme variant name ("dark" or "light"), persisted in the state file
  - Palette - One complete set of color tokens
  - Theme - All configured styles for one variant

# Usage

	variant := styles.ParseVariant(stored)
	theme := styles.NewTheme(variant)

	// Toggling builds a fresh theme.
	theme = styles.NewTheme(theme.Variant.Toggle())

Unknown stored variant names fall back to terminal background detection via
termenv, so a corrupt state file never breaks rendering.

# Render Helpers (animations.go)

The package also carries the small render helpers the chat view shares with
its modals:

	RenderStars(3, 5)             - Star row for the rating picker
	RenderConfidenceBar(0.8, 10)  - Fixed-width confidence meter
	TypingSpinner, LineSpinner    - Spinner frame sets
*/
package styles
