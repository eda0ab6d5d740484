// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// VARIANT TESTS
// =============================================================================

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input string
		want  Variant
	}{
		{"dark", VariantDark},
		{"light", VariantLight},
		{"DARK", VariantDark},
		{"  light  ", VariantLight},
	}

	for _, tc := range tests {
		if got := ParseVariant(tc.input); got != tc.want {
			t.Errorf("ParseVariant(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseVariantUnknownFallsBackToDetection(t *testing.T) {
	detected := DetectVariant()
	for _, input := range []string{"", "solarized", "auto"} {
		if got := ParseVariant(input); got != detected {
			t.Errorf("ParseVariant(%q) = %q, want detected %q", input, got, detected)
		}
	}
}

func TestVariantToggle(t *testing.T) {
	if VariantDark.Toggle() != VariantLight {
		t.Error("dark should toggle to light")
	}
	if VariantLight.Toggle() != VariantDark {
		t.Error("light should toggle to dark")
	}
	if VariantDark.Toggle().Toggle() != VariantDark {
		t.Error("double toggle should round-trip")
	}
}

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestNewTheme(t *testing.T) {
	for _, variant := range []Variant{VariantDark, VariantLight} {
		theme := NewTheme(variant)
		if theme == nil {
			t.Fatalf("NewTheme(%q) returned nil", variant)
		}
		if theme.Variant != variant {
			t.Errorf("NewTheme(%q) Variant = %q", variant, theme.Variant)
		}
	}
}

func TestThemeVariantsUseDistinctPalettes(t *testing.T) {
	dark := NewTheme(VariantDark)
	light := NewTheme(VariantLight)

	if dark.Palette.Surface == light.Palette.Surface {
		t.Error("dark and light surface colors should differ")
	}
	if dark.Palette.TextPrimary == light.Palette.TextPrimary {
		t.Error("dark and light text colors should differ")
	}
}

func TestThemeInitStyles(t *testing.T) {
	theme := NewTheme(VariantDark)

	// Test by rendering and checking for non-empty output
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Header", theme.Header},
		{"UserBubble", theme.UserBubble},
		{"AgentBubble", theme.AgentBubble},
		{"ErrorBubble", theme.ErrorBubble},
		{"InputContainer", theme.InputContainer},
		{"StatusBar", theme.StatusBar},
		{"ModalBox", theme.ModalBox},
		{"TicketBox", theme.TicketBox},
	}

	for _, s := range styles {
		rendered := s.style.Render("test")
		if rendered == "" {
			t.Errorf("%s style should be initialized", s.name)
		}
	}
}

// =============================================================================
// CONFIDENCE STYLE TESTS
// =============================================================================

func TestConfidenceStyle(t *testing.T) {
	theme := NewTheme(VariantDark)

	tests := []struct {
		score float64
		want  lipgloss.Style
	}{
		{0.95, theme.ConfidenceHigh},
		{0.8, theme.ConfidenceHigh},
		{0.79, theme.ConfidenceMid},
		{0.5, theme.ConfidenceMid},
		{0.49, theme.ConfidenceLow},
		{0.0, theme.ConfidenceLow},
	}

	for _, tc := range tests {
		got := theme.ConfidenceStyle(tc.score)
		if got.GetForeground() != tc.want.GetForeground() {
			t.Errorf("ConfidenceStyle(%v) picked wrong style", tc.score)
		}
	}
}

// =============================================================================
// LAYOUT TESTS
// =============================================================================

func TestThemeSetSize(t *testing.T) {
	theme := NewTheme(VariantDark)
	theme.SetSize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("SetSize(120, 40) = %dx%d", theme.Width, theme.Height)
	}
}

func TestGetLayoutMode(t *testing.T) {
	theme := NewTheme(VariantDark)

	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutWide},
		{120, LayoutWide},
	}

	for _, tc := range tests {
		theme.SetSize(tc.width, 24)
		if got := theme.GetLayoutMode(); got != tc.want {
			t.Errorf("GetLayoutMode() at width %d = %v, want %v", tc.width, got, tc.want)
		}
	}
}
