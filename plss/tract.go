// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package plss

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Warning and error flag tokens. Flags are stable lowercase tokens, never
// prose, so downstream filters can match on them.
const (
	FlagDupLot     = "dup_lot"
	FlagDupQQ      = "dup_qq"
	FlagMultiSec   = "multisec"
	FlagLessExcept = "less_except"
	FlagIncluding  = "including"
	FlagSecOver36  = "sec_over_36"
	FlagTRSError   = "trs_error"
	FlagNoLandDesc = "no_landdesc_found"
)

// Tract is a single parsed tract: one TRS plus the text that described it,
// broken down into lots and quarter-quarters.
type Tract struct {
	TRS    TRS
	Desc   string
	Lots   []string
	QQs    []string
	WFlags []string
	EFlags []string
}

var (
	lotGroupRgx = regexp.MustCompile(
		`(?i)\blots?\.?\s*(\d+(?:\s*(?:-|–|through|thru)\s*\d+)?` +
			`(?:(?:\s*(?:,|&|and)\s*)+\d+(?:\s*(?:-|–|through|thru)\s*\d+)?)*)`)
	lotShortRgx = regexp.MustCompile(`\bL(\d+)\b`)
	lotRangeRgx = regexp.MustCompile(`(?i)^(\d+)\s*(?:-|–|through|thru)\s*(\d+)$`)
	lotSplitRgx = regexp.MustCompile(`(?i)\s*(?:,|&|and)\s*`)

	exceptRgx    = regexp.MustCompile(`(?i)\b(?:less|except(?:ing)?|save)\b`)
	includingRgx = regexp.MustCompile(`(?i)\bincluding\b`)

	// Phrases that introduce exception or inclusion clauses become plain
	// segment boundaries once flagged, so the clause text still parses.
	clauseRgx = regexp.MustCompile(
		`(?i)\b(?:less\s+and\s+except|save\s+and\s+except|less|except(?:ing)?|save|including)\b`)

	segmentSplitRgx = regexp.MustCompile(`(?i)\s*(?:[,;:]|\band\b|&)\s*`)
)

// ParseTract parses the text of a single tract (the part after its TRS,
// e.g. "Lots 1 - 3, S/2SW/4") into lots and quarter-quarters. The TRS of
// the returned tract is UndefinedTRS; callers that know the identifier set
// it themselves. Text with nothing recognizable simply yields empty lots
// and QQs.
func ParseTract(text string, cfg Config) Tract {
	t := Tract{TRS: UndefinedTRS, Desc: strings.TrimSpace(text)}

	work := text
	if exceptRgx.MatchString(work) {
		t.WFlags = append(t.WFlags, FlagLessExcept)
	}
	if includingRgx.MatchString(work) {
		t.WFlags = append(t.WFlags, FlagIncluding)
	}
	work = clauseRgx.ReplaceAllString(work, ";")

	work, lots := extractLots(work)
	dupLot := false
	t.Lots, dupLot = dedupe(lots)
	if dupLot {
		t.WFlags = append(t.WFlags, FlagDupLot)
	}

	var qqs []string
	for _, seg := range segmentSplitRgx.Split(work, -1) {
		qqs = append(qqs, parseAliquot(seg)...)
	}
	dupQQ := false
	t.QQs, dupQQ = dedupe(qqs)
	if dupQQ {
		t.WFlags = append(t.WFlags, FlagDupQQ)
	}

	return t
}

// extractLots pulls every lot reference out of text, returning the text
// with the references blanked to segment boundaries plus the lot names in
// appearance order.
func extractLots(text string) (string, []string) {
	var lots []string
	text = lotGroupRgx.ReplaceAllStringFunc(text, func(m string) string {
		blob := lotGroupRgx.FindStringSubmatch(m)[1]
		for _, item := range lotSplitRgx.Split(blob, -1) {
			lots = append(lots, expandLotItem(item)...)
		}
		return ";"
	})
	text = lotShortRgx.ReplaceAllStringFunc(text, func(m string) string {
		lots = append(lots, "L"+lotShortRgx.FindStringSubmatch(m)[1])
		return ";"
	})
	return text, lots
}

// expandLotItem turns one list item into lot names, expanding ranges:
// "7" -> [L7], "1 - 3" -> [L1 L2 L3].
func expandLotItem(item string) []string {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil
	}
	if m := lotRangeRgx.FindStringSubmatch(item); m != nil {
		lo, _ := strconv.Atoi(m[1]) //nolint:errcheck // digits by regex
		hi, _ := strconv.Atoi(m[2]) //nolint:errcheck // digits by regex
		if hi < lo {
			return []string{fmt.Sprintf("L%d", lo), fmt.Sprintf("L%d", hi)}
		}
		var out []string
		for n := lo; n <= hi; n++ {
			out = append(out, fmt.Sprintf("L%d", n))
		}
		return out
	}
	n, err := strconv.Atoi(item)
	if err != nil {
		return nil
	}
	return []string{fmt.Sprintf("L%d", n)}
}

// dedupe drops repeated entries, keeping first appearances, and reports
// whether anything was dropped.
func dedupe(in []string) ([]string, bool) {
	if len(in) == 0 {
		return nil, false
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	dropped := false
	for _, s := range in {
		if _, ok := seen[s]; ok {
			dropped = true
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, dropped
}
