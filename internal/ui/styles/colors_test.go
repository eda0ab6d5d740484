// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"reflect"
	"testing"
)

// =============================================================================
// PALETTE TESTS
// =============================================================================

// TestPalettesFullyPopulated walks every Palette field so a new token cannot
// be added to one variant and forgotten in the other.
func TestPalettesFullyPopulated(t *testing.T) {
	for _, tc := range []struct {
		name    string
		palette Palette
	}{
		{"dark", DarkPalette()},
		{"light", LightPalette()},
	} {
		v := reflect.ValueOf(tc.palette)
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				t.Errorf("%s palette: field %s is empty", tc.name, v.Type().Field(i).Name)
			}
		}
	}
}

func TestStatusIndicatorsAreASCII(t *testing.T) {
	indicators := []string{
		StatusIndicators.Success,
		StatusIndicators.Error,
		StatusIndicators.Warning,
		StatusIndicators.Info,
		StatusIndicators.Pending,
	}
	for _, ind := range indicators {
		if ind == "" {
			t.Error("indicator should not be empty")
		}
		for _, r := range ind {
			if r > 127 {
				t.Errorf("indicator %q contains non-ASCII rune %q", ind, r)
			}
		}
	}
}
