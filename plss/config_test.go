// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package plss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseConfig verifies token parsing, defaults and rejection of
// unknown tokens.
func TestParseConfig(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected Config
		wantErr  bool
	}{
		{
			name:     "empty spec yields defaults",
			spec:     "",
			expected: Config{DefaultNS: "n", DefaultEW: "w"},
		},
		{
			name:     "directions",
			spec:     "s,e",
			expected: Config{DefaultNS: "s", DefaultEW: "e"},
		},
		{
			name:     "directions plus layout",
			spec:     "n,w,TRS_desc",
			expected: Config{DefaultNS: "n", DefaultEW: "w", Layout: LayoutTRSDesc},
		},
		{
			name:     "layout is case-insensitive",
			spec:     "trs_desc",
			expected: Config{DefaultNS: "n", DefaultEW: "w", Layout: LayoutTRSDesc},
		},
		{
			name:     "directions are case-insensitive",
			spec:     "S,E",
			expected: Config{DefaultNS: "s", DefaultEW: "e"},
		},
		{
			name:     "tokens may carry spaces",
			spec:     " s , e ",
			expected: Config{DefaultNS: "s", DefaultEW: "e"},
		},
		{
			name:    "unknown token is an error",
			spec:    "n,w,bogus",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestDefaultConfig verifies the stock defaults: north, west, deduced
// layout.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "n", cfg.DefaultNS)
	assert.Equal(t, "w", cfg.DefaultEW)
	assert.Empty(t, cfg.Layout)
}

// TestLayouts verifies the four recognized layout names.
func TestLayouts(t *testing.T) {
	assert.Equal(t,
		[]string{"TRS_desc", "desc_STR", "S_desc_TR", "TR_desc_S"},
		Layouts())
}
