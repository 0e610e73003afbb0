// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package sniff

import (
	"regexp"
	"strings"

	"github.com/plssctl/plssctl/plss"
)

// nameTokens are column-name tokens that suggest a column carries PLSS text,
// strongest first. A column named "legal_desc" or "landDescription" should
// win over one named "trs_notes".
var nameTokens = []string{
	"desc",
	"description",
	"legal",
	"land",
	"trs",
	"plss",
	"tract",
	"location",
}

var (
	camelCaseRe = regexp.MustCompile(`([a-z])([A-Z])`)
	splitRe     = regexp.MustCompile(`[^a-z0-9]+`)
)

// Column returns the name of the column most likely to hold land-description
// or TRS text, or "" when nothing looks plausible. Column names are matched
// against well-known tokens; sample values (if provided, keyed by column
// name) break ties by rewarding columns whose text actually parses to a TRS.
func Column(names []string, sample map[string][]string) string {
	best := ""
	bestScore := 0

	for _, name := range names {
		score := scoreName(name)

		// Reward columns whose sampled values parse.
		for _, v := range sample[name] {
			if ContainsPLSS(v) {
				score += 2
			}
		}

		if score > bestScore {
			best = name
			bestScore = score
		}
	}

	return best
}

// ContainsPLSS returns true if the text parses to at least one non-error TRS.
func ContainsPLSS(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	d := plss.ParseDescription(text, plss.DefaultConfig())
	return len(d.TRSList().WithoutErrors()) > 0
}

// scoreName scores a single column name by token and substring matches
// against the well-known tokens. Matching is case-insensitive and checks both
// token equality (after splitting on non-alphanumeric chars and camelCase
// boundaries) and substring containment.
func scoreName(name string) int {
	if name == "" {
		return 0
	}

	nameLower := strings.ToLower(name)

	// Split the name by:
	// 1. Non-alphanumeric separators (dashes, dots, underscores, etc.)
	// 2. CamelCase boundaries (transition from lowercase to uppercase)
	// First replace camelCase boundaries with a delimiter, then split by
	// non-alphanumeric.
	nameWithDelim := camelCaseRe.ReplaceAllString(name, "${1}_${2}")
	nameParts := splitRe.Split(strings.ToLower(nameWithDelim), -1)

	score := 0
	for i, tok := range nameTokens {
		weight := len(nameTokens) - i

		// If the token appears as a whole name part, it's a strong signal.
		for _, p := range nameParts {
			if p == tok {
				score += weight * 10
			}
		}

		// Also treat any substring occurrence as a weaker match. Covers cases
		// like "legaldesc", where the name is jammed without separators.
		if strings.Contains(nameLower, tok) {
			score += weight
		}
	}

	return score
}
