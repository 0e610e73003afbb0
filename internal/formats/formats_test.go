// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plssctl/plssctl/internal/config"
	"github.com/plssctl/plssctl/plss"
	"github.com/plssctl/plssctl/trsx"
)

// pinConfig pins the global config to a known formats section so tests do not
// depend on any plssctl.yaml on the developer's machine.
func pinConfig(t *testing.T, data map[string]interface{}) {
	t.Helper()
	config.Config = config.Type{Data: data}
	t.Cleanup(func() {
		config.Config = config.Type{}
	})
}

func TestResolve(t *testing.T) {
	pinConfig(t, map[string]interface{}{
		"formats": map[string]interface{}{
			"bor": map[string]interface{}{
				"rgx":   `(?P<twp>\d{1,3})/(?P<rge>\d{1,3})/(?P<sec_list>\d{1,3})`,
				"split": "comma",
			},
			"nosplit": map[string]interface{}{
				"rgx": `(?P<twp>\d{1,3}):(?P<rge>\d{1,3}):(?P<sec_list>\d{1,3})`,
			},
			"broken": map[string]interface{}{
				"rgx": `(?P<twp>\d+)`,
			},
		},
	})

	tests := []struct {
		name        string
		format      string
		wantPattern string
		wantErr     bool
		errMsg      string
	}{
		{
			name:        "empty defaults to preset a",
			format:      "",
			wantPattern: trsx.FormatA.Pattern.String(),
			wantErr:     false,
		},
		{
			name:        "preset a",
			format:      "a",
			wantPattern: trsx.FormatA.Pattern.String(),
			wantErr:     false,
		},
		{
			name:        "preset b uppercase",
			format:      "B",
			wantPattern: trsx.FormatB.Pattern.String(),
			wantErr:     false,
		},
		{
			name:        "preset c with spaces",
			format:      " c ",
			wantPattern: trsx.FormatC.Pattern.String(),
			wantErr:     false,
		},
		{
			name:        "config format",
			format:      "bor",
			wantPattern: `(?P<twp>\d{1,3})/(?P<rge>\d{1,3})/(?P<sec_list>\d{1,3})`,
			wantErr:     false,
		},
		{
			name:        "config format split defaults to comma",
			format:      "nosplit",
			wantPattern: `(?P<twp>\d{1,3}):(?P<rge>\d{1,3}):(?P<sec_list>\d{1,3})`,
			wantErr:     false,
		},
		{
			name:    "config format missing groups",
			format:  "broken",
			wantErr: true,
			errMsg:  "must define named groups",
		},
		{
			name:    "unknown format",
			format:  "bogus",
			wantErr: true,
			errMsg:  "failed to find format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got.Pattern)
			assert.Equal(t, tt.wantPattern, got.Pattern.String())
			assert.NotNil(t, got.SplitSecs)
		})
	}
}

func TestResolveConfigFormatRoundTrip(t *testing.T) {
	pinConfig(t, map[string]interface{}{
		"formats": map[string]interface{}{
			"bor": map[string]interface{}{
				"rgx":   `(?P<twp>\d{1,3})/(?P<rge>\d{1,3})/(?P<sec_list>\d{1,3})`,
				"split": "comma",
			},
		},
	})

	f, err := Resolve("bor")
	require.NoError(t, err)

	list, err := trsx.FindAll("154/97/14 and 8/22/1", f, plss.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"154n97w14", "8n22w01"}, list.Strings())
}

func TestCustom(t *testing.T) {
	tests := []struct {
		name    string
		rgx     string
		split   string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid pattern and splitter",
			rgx:     `(?P<twp>\d+)-(?P<rge>\d+)-(?P<sec_list>\d+(?: \d+)*)`,
			split:   "space",
			wantErr: false,
		},
		{
			name:    "empty split defaults to comma",
			rgx:     `(?P<twp>\d+)-(?P<rge>\d+)-(?P<sec_list>\d+)`,
			split:   "",
			wantErr: false,
		},
		{
			name:    "invalid regex",
			rgx:     `(?P<twp>[`,
			wantErr: true,
			errMsg:  "invalid format pattern",
		},
		{
			name:    "missing named groups",
			rgx:     `(\d+)-(\d+)-(\d+)`,
			wantErr: true,
			errMsg:  "must define named groups",
		},
		{
			name:    "unknown splitter",
			rgx:     `(?P<twp>\d+)-(?P<rge>\d+)-(?P<sec_list>\d+)`,
			split:   "pipe",
			wantErr: true,
			errMsg:  "unrecognized splitter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Custom(tt.rgx, tt.split)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, got.Pattern)
			assert.NotNil(t, got.SplitSecs)
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Names())
}
