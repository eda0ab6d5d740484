// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
	"time"
)

// =============================================================================
// SPINNER CONFIG TESTS
// =============================================================================

func TestSpinnerConfigs(t *testing.T) {
	spinners := []struct {
		name   string
		config SpinnerConfig
	}{
		{"TypingSpinner", TypingSpinner},
		{"LineSpinner", LineSpinner},
	}

	for _, s := range spinners {
		t.Run(s.name, func(t *testing.T) {
			if len(s.config.Frames) == 0 {
				t.Error("spinner should have frames")
			}
			if s.config.FPS <= 0 {
				t.Error("spinner should have positive FPS")
			}
			if s.config.Duration() <= 0 || s.config.Duration() > time.Second {
				t.Errorf("Duration() = %v, want within (0, 1s]", s.config.Duration())
			}
		})
	}
}

// =============================================================================
// STAR ROW TESTS
// =============================================================================

func TestRenderStars(t *testing.T) {
	tests := []struct {
		filled, total int
		want          string
	}{
		{0, 5, "☆ ☆ ☆ ☆ ☆"},
		{3, 5, "★ ★ ★ ☆ ☆"},
		{5, 5, "★ ★ ★ ★ ★"},
		{7, 5, "★ ★ ★ ★ ★"}, // clamped
		{-1, 5, "☆ ☆ ☆ ☆ ☆"},
		{1, 0, ""},
	}

	for _, tc := range tests {
		if got := RenderStars(tc.filled, tc.total); got != tc.want {
			t.Errorf("RenderStars(%d, %d) = %q, want %q", tc.filled, tc.total, got, tc.want)
		}
	}
}

// =============================================================================
// CONFIDENCE BAR TESTS
// =============================================================================

func TestRenderConfidenceBar(t *testing.T) {
	tests := []struct {
		score float64
		width int
		want  string
	}{
		{0.0, 10, "----------"},
		{1.0, 10, "##########"},
		{0.5, 10, "#####-----"},
		{1.5, 10, "##########"}, // clamped
		{-0.5, 10, "----------"},
		{0.5, 0, ""},
	}

	for _, tc := range tests {
		got := RenderConfidenceBar(tc.score, tc.width)
		if got != tc.want {
			t.Errorf("RenderConfidenceBar(%v, %d) = %q, want %q", tc.score, tc.width, got, tc.want)
		}
		if len(got) > 0 && len(got) != tc.width {
			t.Errorf("RenderConfidenceBar(%v, %d) width = %d", tc.score, tc.width, len(got))
		}
	}
}

func TestRenderConfidenceBarWidthIsStable(t *testing.T) {
	for score := 0.0; score <= 1.0; score += 0.05 {
		bar := RenderConfidenceBar(score, 20)
		if len(bar) != 20 {
			t.Fatalf("bar width drifted at score %v: %q", score, bar)
		}
		if strings.ContainsAny(bar, " ") {
			t.Fatalf("bar contains padding at score %v: %q", score, bar)
		}
	}
}
