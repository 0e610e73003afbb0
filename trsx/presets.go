// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package trsx

import "regexp"

// The three preset formats. Format A is the compiled-twprge notation
// with a comma section list; B and C are pure-numeric dash notations,
// differing in whether the sections come last or first. Directions for
// B and C come from the plss.Config defaults.
//
// Format A bounds every section number with \b so that the digits of a
// following twprge ("..., 155n98w - 11") are never pulled into the
// current section list.
var (
	FormatA = Format{
		Pattern: regexp.MustCompile(
			`(?P<twp>\d{1,3}[NSns])(?P<rge>\d{1,3}[EWew]) - ` +
				`(?P<sec_list>\d{1,2}\b(?:, \d{1,2}\b)*)`),
		SplitSecs: SplitComma,
	}

	FormatB = Format{
		Pattern: regexp.MustCompile(
			`(?P<twp>\d{1,3})-(?P<rge>\d{1,3})-(?P<sec_list>\d{1,3}(?:-\d{1,3})*)`),
		SplitSecs: SplitDash,
	}

	FormatC = Format{
		Pattern: regexp.MustCompile(
			`(?P<sec_list>\d{1,3}(?:-\d{1,3})*)-(?P<twp>\d{1,3})-(?P<rge>\d{1,3})`),
		SplitSecs: SplitDash,
	}
)

// Presets returns the preset formats keyed a, b, c.
func Presets() map[string]Format {
	return map[string]Format{
		"a": FormatA,
		"b": FormatB,
		"c": FormatC,
	}
}

// Examples demonstrates each preset, keyed like Presets. The outputs are
// the compiled TRS strings FindAll yields with default config.
var Examples = map[string]Example{
	"a": {
		In:  "154n97w - 14, 1, 155n98w - 11",
		Out: []string{"154n97w14", "154n97w01", "155n98w11"},
	},
	"b": {
		In:  "154-097-014-001",
		Out: []string{"154n97w14", "154n97w01"},
	},
	"c": {
		In:  "014-154-097",
		Out: []string{"154n97w14"},
	},
}
