// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Variant names a theme variant. The active variant persists across runs;
// the zero value is not valid, construct with ParseVariant or DetectVariant.
type Variant string

const (
	VariantDark  Variant = "dark"
	VariantLight Variant = "light"
)

// ParseVariant maps a stored variant name onto a known variant. Unknown or
// empty names fall back to terminal detection, so a hand-edited state file
// cannot wedge the UI.
func ParseVariant(name string) Variant {
	switch Variant(strings.ToLower(strings.TrimSpace(name))) {
	case VariantDark:
		return VariantDark
	case VariantLight:
		return VariantLight
	default:
		return DetectVariant()
	}
}

// DetectVariant picks the variant matching the terminal background.
func DetectVariant() Variant {
	if termenv.HasDarkBackground() {
		return VariantDark
	}
	return VariantLight
}

// Toggle returns the other variant.
func (v Variant) Toggle() Variant {
	if v == VariantDark {
		return VariantLight
	}
	return VariantDark
}

func (v Variant) String() string {
	return string(v)
}

// Theme holds all the styled components for the application, built from one
// palette. Toggling the theme constructs a fresh Theme; individual styles are
// never mutated after construction.
type Theme struct {
	Variant Variant
	Palette Palette

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	SessionTag     lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble    lipgloss.Style
	AgentBubble   lipgloss.Style
	ErrorBubble   lipgloss.Style
	FocusedBorder lipgloss.Style
	RoleLabel     lipgloss.Style
	Timestamp     lipgloss.Style

	// ==========================================================================
	// MESSAGE META STYLES (confidence, sources, ratings)
	// ==========================================================================

	MetaLine       lipgloss.Style
	SourceItem     lipgloss.Style
	ConfidenceHigh lipgloss.Style
	ConfidenceMid  lipgloss.Style
	ConfidenceLow  lipgloss.Style
	RatedBadge     lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	StatusError  lipgloss.Style
	StatusNotice lipgloss.Style

	// ==========================================================================
	// SPINNER AND TYPING INDICATOR STYLES
	// ==========================================================================

	Spinner    lipgloss.Style
	TypingText lipgloss.Style

	// ==========================================================================
	// MODAL STYLES (feedback and escalation dialogs)
	// ==========================================================================

	ModalBox       lipgloss.Style
	ModalTitle     lipgloss.Style
	ModalHint      lipgloss.Style
	StarActive     lipgloss.Style
	StarInactive   lipgloss.Style
	OptionLabel    lipgloss.Style
	OptionValue    lipgloss.Style
	TicketBox      lipgloss.Style
	TicketLabel    lipgloss.Style
	TicketValue    lipgloss.Style
	SubmittingText lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeBox  lipgloss.Style
	WelcomeText lipgloss.Style
	WelcomeKey  lipgloss.Style
}

// NewTheme creates a theme for the given variant with all styles configured.
func NewTheme(variant Variant) *Theme {
	p := DarkPalette()
	if variant == VariantLight {
		p = LightPalette()
	}

	t := &Theme{
		Variant: variant,
		Palette: p,
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles from the palette.
func (t *Theme) initStyles() {
	p := t.Palette

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Background(p.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.AccentDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Italic(true)

	t.SessionTag = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(p.UserBubbleFg).
		Background(p.UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.AgentBubble = lipgloss.NewStyle().
		Foreground(p.AgentBubbleFg).
		Background(p.AgentBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.AgentBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.ErrorBubble = lipgloss.NewStyle().
		Foreground(p.ErrorBubbleFg).
		Background(p.ErrorBubbleBg).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(p.ErrorBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.FocusedBorder = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(p.Accent)

	t.RoleLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextSecondary)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Message meta
	t.MetaLine = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		PaddingLeft(2)

	t.SourceItem = lipgloss.NewStyle().
		Foreground(p.Info).
		PaddingLeft(4)

	t.ConfidenceHigh = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)

	t.ConfidenceMid = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)

	t.ConfidenceLow = lipgloss.NewStyle().
		Foreground(p.Danger).
		Bold(true)

	t.RatedBadge = lipgloss.NewStyle().
		Foreground(p.Success)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(p.SurfaceDim).
		Foreground(p.TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.StatusError = lipgloss.NewStyle().
		Foreground(p.Danger).
		Bold(true)

	t.StatusNotice = lipgloss.NewStyle().
		Foreground(p.Success)

	// Spinner and typing indicator
	t.Spinner = lipgloss.NewStyle().
		Foreground(p.Accent)

	t.TypingText = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Italic(true)

	// Modals
	t.ModalBox = lipgloss.NewStyle().
		Background(p.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 2)

	t.ModalTitle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.ModalHint = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	t.StarActive = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)

	t.StarInactive = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.OptionLabel = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Width(10)

	t.OptionValue = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Bold(true)

	t.TicketBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Success).
		Padding(1, 2)

	t.TicketLabel = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Width(16)

	t.TicketValue = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Bold(true)

	t.SubmittingText = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	// Welcome screen
	t.WelcomeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(p.AccentDim).
		Padding(1, 4).
		Align(lipgloss.Center)

	t.WelcomeText = lipgloss.NewStyle().
		Foreground(p.TextSecondary)

	t.WelcomeKey = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
}

// ConfidenceStyle picks the style matching a confidence score. The
// thresholds mirror the badge coloring users already know from the web
// client: green at 0.8 and above, amber at 0.5, red below.
func (t *Theme) ConfidenceStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.8:
		return t.ConfidenceHigh
	case score >= 0.5:
		return t.ConfidenceMid
	default:
		return t.ConfidenceLow
	}
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutWide
)

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	return LayoutWide
}
