// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package trsx

import (
	"strings"

	"github.com/plssctl/plssctl/plss"
)

// ToFormatA renders a TRS list in Format A notation: one group per
// twprge in first-appearance order, each "<twprge> - <sec list>" with
// sections joined by secDelim and groups joined by twpRgeDelim. Sections
// render without leading zeros. discardErrors drops error and undefined
// identifiers first. An empty list renders as the empty string.
func ToFormatA(list plss.TRSList, secDelim, twpRgeDelim string, discardErrors bool) string {
	if discardErrors {
		list = list.WithoutErrors()
	}
	groups := list.GroupByTwpRge()
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		secs := make([]string, 0, len(g.TRS))
		for _, t := range g.TRS {
			secs = append(secs, renderSec(t.Sec))
		}
		parts = append(parts, g.TwpRge+" - "+strings.Join(secs, secDelim))
	}
	return strings.Join(parts, twpRgeDelim)
}

// renderSec strips the zero padding back off a section for display.
// Placeholder sections render as themselves.
func renderSec(sec string) string {
	return trimZeros(sec)
}
