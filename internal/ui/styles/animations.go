// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"time"
)

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// TypingSpinner - Animation shown while the agent composes a reply
var TypingSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    6,
}

// LineSpinner - Simple line rotation for bootstrap and submit states
var LineSpinner = SpinnerConfig{
	Frames: []string{"|", "/", "-", "\\"},
	FPS:    10,
}

// SpinnerConfig holds the configuration for a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the duration for each frame.
func (s SpinnerConfig) Duration() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

// =============================================================================
// RATING AND CONFIDENCE RENDERING
// =============================================================================

// Star characters for the rating picker. The filled/empty pair stays
// distinguishable without color.
const (
	StarFilled = "★"
	StarEmpty  = "☆"
)

// RenderStars renders a rating row of total stars with filled of them lit.
func RenderStars(filled, total int) string {
	if total <= 0 {
		return ""
	}
	if filled < 0 {
		filled = 0
	}
	if filled > total {
		filled = total
	}
	var sb strings.Builder
	for i := 0; i < total; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		if i < filled {
			sb.WriteString(StarFilled)
		} else {
			sb.WriteString(StarEmpty)
		}
	}
	return sb.String()
}

// ConfidenceBar characters (ASCII-only for compatibility).
const (
	confidenceFull  = "#"
	confidenceEmpty = "-"
)

// RenderConfidenceBar renders a fixed-width meter for a 0..1 score, clamped.
func RenderConfidenceBar(score float64, width int) string {
	if width <= 0 {
		return ""
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	filled := int(score*float64(width) + 0.5)
	return strings.Repeat(confidenceFull, filled) + strings.Repeat(confidenceEmpty, width-filled)
}
