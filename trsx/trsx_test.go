// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package trsx

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plssctl/plssctl/plss"
)

// TestFind verifies single extraction: first match wins, named groups
// feed the builder, and unmatched text degrades to placeholders.
func TestFind(t *testing.T) {
	dotted := regexp.MustCompile(`(?P<twp>\d{1,3})\.(?P<rge>\d{1,3})\.(?P<sec>\d{1,2})`)

	tests := []struct {
		name     string
		txt      string
		rgx      *regexp.Regexp
		expected string
	}{
		{
			name:     "first match wins",
			txt:      "154.97.14 then 155.98.11",
			rgx:      dotted,
			expected: "154n97w14",
		},
		{
			name:     "no match on compiled text parses the text itself",
			txt:      "154n97w14",
			rgx:      dotted,
			expected: "154n97w14",
		},
		{
			name:     "no match is the error TRS",
			txt:      "nothing here",
			rgx:      dotted,
			expected: "XXXzXXXzXX",
		},
		{
			name:     "empty text is the undefined TRS",
			txt:      "",
			rgx:      dotted,
			expected: "___z___z__",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Find(tt.txt, tt.rgx, plss.DefaultConfig())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

// TestFindMissingGroups verifies that patterns without the required
// named groups are rejected.
func TestFindMissingGroups(t *testing.T) {
	_, err := Find("154n97w14", regexp.MustCompile(`(\d+)n`), plss.DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "named groups")
}

// TestFindConfigDirections verifies that config directions fill in for
// pure-numeric groups.
func TestFindConfigDirections(t *testing.T) {
	rgx := regexp.MustCompile(`(?P<twp>\d{1,3})\.(?P<rge>\d{1,3})\.(?P<sec>\d{1,2})`)
	cfg := plss.Config{DefaultNS: "s", DefaultEW: "e"}

	got, err := Find("8.22.1", rgx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "8s22e01", got.String())
}

// TestFindAll verifies multi-extraction across matches and section
// tokens.
func TestFindAll(t *testing.T) {
	got, err := FindAll("154n97w - 14, 1, 155n98w - 11", FormatA, plss.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"154n97w14", "154n97w01", "155n98w11"},
		got.Strings())
}

// TestFindAllNoMatches verifies the empty, non-nil result.
func TestFindAllNoMatches(t *testing.T) {
	got, err := FindAll("no identifiers in sight", FormatA, plss.DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

// TestFindAllCustomFormat verifies a caller-supplied format with a
// space splitter and the SplitComma fallback for a nil splitter.
func TestFindAllCustomFormat(t *testing.T) {
	f := Format{
		Pattern: regexp.MustCompile(
			`(?P<twp>\d{1,3})/(?P<rge>\d{1,3})/(?P<sec_list>\d[\d ]*)`),
		SplitSecs: SplitSpace,
	}

	got, err := FindAll("154/97/1 14", f, plss.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"154n97w01", "154n97w14"}, got.Strings())

	f.SplitSecs = nil // falls back to comma
	got, err = FindAll("154/97/7", f, plss.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"154n97w07"}, got.Strings())
}

// TestFindAllBadFormat verifies rejection of patternless and groupless
// formats.
func TestFindAllBadFormat(t *testing.T) {
	_, err := FindAll("x", Format{}, plss.DefaultConfig())
	require.Error(t, err)

	f := Format{Pattern: regexp.MustCompile(`(?P<twp>\d+)-(?P<rge>\d+)`)}
	_, err = FindAll("1-2", f, plss.DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sec_list")
}

// TestSplitters verifies token trimming and zero stripping across the
// three splitters.
func TestSplitters(t *testing.T) {
	tests := []struct {
		name     string
		split    SplitFunc
		in       string
		expected []string
	}{
		{name: "comma", split: SplitComma, in: "14, 1", expected: []string{"14", "1"}},
		{name: "comma drops empties", split: SplitComma, in: "14,,1,", expected: []string{"14", "1"}},
		{name: "dash", split: SplitDash, in: "014-001", expected: []string{"14", "1"}},
		{name: "space", split: SplitSpace, in: " 7  22 ", expected: []string{"7", "22"}},
		{name: "all zeros", split: SplitComma, in: "000", expected: []string{"0"}},
		{name: "non-digits pass through", split: SplitComma, in: "1a, 2", expected: []string{"1a", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.split(tt.in))
		})
	}
}

// TestSplitterFor verifies name resolution.
func TestSplitterFor(t *testing.T) {
	for _, name := range []string{"comma", "dash", "space", "COMMA", " dash "} {
		got, err := SplitterFor(name)
		require.NoError(t, err, name)
		require.NotNil(t, got, name)
	}

	_, err := SplitterFor("pipe")
	require.Error(t, err)
}

// TestToFormatA verifies grouping, delimiters, zero stripping and error
// discarding.
func TestToFormatA(t *testing.T) {
	list := plss.TRSList{
		plss.ParseTRS("154n97w14"),
		plss.ParseTRS("155n98w11"),
		plss.ParseTRS("154n97w01"),
	}

	// Groups keep first-appearance order; sections drop their padding.
	assert.Equal(t,
		"154n97w - 14, 1; 155n98w - 11",
		ToFormatA(list, ", ", "; ", false))

	// Round-trips the Format A example with matching delimiters.
	assert.Equal(t,
		Examples["a"].In,
		ToFormatA(mustFindAll(t, Examples["a"].In, FormatA), ", ", ", ", false))
}

// TestToFormatADiscardErrors verifies error and undefined identifiers
// drop before grouping.
func TestToFormatADiscardErrors(t *testing.T) {
	list := plss.TRSList{
		plss.ParseTRS("154n97w14"),
		plss.ErrorTRS,
		plss.UndefinedTRS,
	}

	assert.Equal(t, "154n97w - 14", ToFormatA(list, ", ", "; ", true))
	assert.Equal(t,
		"154n97w - 14; XXXzXXXz - XX; ___z___z - __",
		ToFormatA(list, ", ", "; ", false))
}

// TestToFormatAEmpty verifies the empty rendering.
func TestToFormatAEmpty(t *testing.T) {
	assert.Equal(t, "", ToFormatA(nil, ", ", "; ", false))
	assert.Equal(t, "", ToFormatA(plss.TRSList{plss.ErrorTRS}, ", ", "; ", true))
}

func mustFindAll(t *testing.T, txt string, f Format) plss.TRSList {
	t.Helper()
	list, err := FindAll(txt, f, plss.DefaultConfig())
	require.NoError(t, err)
	return list
}
