// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package trsx

import (
	"fmt"
	"strings"
)

// SplitComma splits a section list on commas, tolerating whitespace.
func SplitComma(s string) []string {
	return splitTokens(strings.Split(s, ","))
}

// SplitDash splits a section list on dashes.
func SplitDash(s string) []string {
	return splitTokens(strings.Split(s, "-"))
}

// SplitSpace splits a section list on runs of whitespace.
func SplitSpace(s string) []string {
	return splitTokens(strings.Fields(s))
}

// SplitterFor resolves a splitter by name: comma, dash or space.
func SplitterFor(name string) (SplitFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "comma":
		return SplitComma, nil
	case "dash":
		return SplitDash, nil
	case "space":
		return SplitSpace, nil
	}
	return nil, fmt.Errorf("unrecognized splitter %q (want comma, dash or space)", name)
}

// splitTokens trims each token, drops empties and strips leading zeros
// from all-digit tokens ("014" -> "14").
func splitTokens(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out = append(out, trimZeros(tok))
	}
	return out
}

func trimZeros(tok string) string {
	for _, r := range tok {
		if r < '0' || r > '9' {
			return tok
		}
	}
	trimmed := strings.TrimLeft(tok, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
