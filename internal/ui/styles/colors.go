// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the helpdesk TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is one complete set of color tokens. The active palette is chosen
// at startup and flipped at runtime when the user toggles the theme, so the
// tokens are concrete colors rather than adaptive pairs.
type Palette struct {
	// Primary accents
	Accent    lipgloss.Color // brand color, headers, selections
	AccentDim lipgloss.Color // borders around accent elements

	// Semantic states
	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
	Info    lipgloss.Color

	// Surfaces
	Surface    lipgloss.Color // main background
	SurfaceDim lipgloss.Color // headers, footers, status bar
	Overlay    lipgloss.Color // borders, separators

	// Text
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextInverse   lipgloss.Color

	// Message bubbles
	UserBubbleBg      lipgloss.Color
	UserBubbleFg      lipgloss.Color
	UserBubbleBorder  lipgloss.Color
	AgentBubbleBg     lipgloss.Color
	AgentBubbleFg     lipgloss.Color
	AgentBubbleBorder lipgloss.Color
	ErrorBubbleBg     lipgloss.Color
	ErrorBubbleFg     lipgloss.Color
	ErrorBubbleBorder lipgloss.Color
}

// DarkPalette returns the color tokens for the dark theme.
func DarkPalette() Palette {
	return Palette{
		Accent:    lipgloss.Color("#22D3EE"),
		AccentDim: lipgloss.Color("#164E63"),

		Success: lipgloss.Color("#34D399"),
		Warning: lipgloss.Color("#FBBF24"),
		Danger:  lipgloss.Color("#FB7185"),
		Info:    lipgloss.Color("#60A5FA"),

		Surface:    lipgloss.Color("#1E1E2E"),
		SurfaceDim: lipgloss.Color("#181825"),
		Overlay:    lipgloss.Color("#313244"),

		TextPrimary:   lipgloss.Color("#CDD6F4"),
		TextSecondary: lipgloss.Color("#A6ADC8"),
		TextMuted:     lipgloss.Color("#6C7086"),
		TextInverse:   lipgloss.Color("#1E1E2E"),

		UserBubbleBg:      lipgloss.Color("#1D4ED8"),
		UserBubbleFg:      lipgloss.Color("#E0F2FE"),
		UserBubbleBorder:  lipgloss.Color("#3B82F6"),
		AgentBubbleBg:     lipgloss.Color("#3B3655"),
		AgentBubbleFg:     lipgloss.Color("#E9E4F5"),
		AgentBubbleBorder: lipgloss.Color("#A78BFA"),
		ErrorBubbleBg:     lipgloss.Color("#881337"),
		ErrorBubbleFg:     lipgloss.Color("#FECACA"),
		ErrorBubbleBorder: lipgloss.Color("#FB7185"),
	}
}

// LightPalette returns the color tokens for the light theme.
func LightPalette() Palette {
	return Palette{
		Accent:    lipgloss.Color("#0891B2"),
		AccentDim: lipgloss.Color("#A5F3FC"),

		Success: lipgloss.Color("#059669"),
		Warning: lipgloss.Color("#D97706"),
		Danger:  lipgloss.Color("#E11D48"),
		Info:    lipgloss.Color("#2563EB"),

		Surface:    lipgloss.Color("#FFFFFF"),
		SurfaceDim: lipgloss.Color("#F5F5F5"),
		Overlay:    lipgloss.Color("#E5E5E5"),

		TextPrimary:   lipgloss.Color("#1F2937"),
		TextSecondary: lipgloss.Color("#6B7280"),
		TextMuted:     lipgloss.Color("#9CA3AF"),
		TextInverse:   lipgloss.Color("#FFFFFF"),

		UserBubbleBg:      lipgloss.Color("#DBEAFE"),
		UserBubbleFg:      lipgloss.Color("#1E40AF"),
		UserBubbleBorder:  lipgloss.Color("#3B82F6"),
		AgentBubbleBg:     lipgloss.Color("#F5F3FF"),
		AgentBubbleFg:     lipgloss.Color("#5B4B8A"),
		AgentBubbleBorder: lipgloss.Color("#C4B5FD"),
		ErrorBubbleBg:     lipgloss.Color("#FEE2E2"),
		ErrorBubbleFg:     lipgloss.Color("#991B1B"),
		ErrorBubbleBorder: lipgloss.Color("#E11D48"),
	}
}

// =============================================================================
// ACCESSIBILITY: Shape indicators alongside colors
// =============================================================================

// StatusIndicatorSet contains text/shape indicators for status states.
// These symbols provide visual cues beyond color for colorblind accessibility.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Warning string
	Info    string
	Pending string
}

// StatusIndicators provides accessible shape/text indicators alongside colors.
// ACCESSIBILITY: ASCII-only indicators for maximum compatibility.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
	Pending: "[ ]",
}
