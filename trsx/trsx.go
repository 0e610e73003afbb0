// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package trsx

import (
	"fmt"
	"regexp"

	"github.com/plssctl/plssctl/plss"
)

// SplitFunc turns a matched section-list substring into individual
// section tokens.
type SplitFunc func(string) []string

// Format is a reusable extraction format: a pattern with named groups
// twp, rge and sec_list, plus the splitter for the section list. A nil
// SplitSecs falls back to SplitComma.
type Format struct {
	Pattern   *regexp.Regexp
	SplitSecs SplitFunc
}

// Example pairs a demonstration input with the TRS strings a preset
// yields for it.
type Example struct {
	In  string
	Out []string
}

// Find extracts a single TRS from txt, first match wins. rgx must define
// the named groups twp, rge and sec; a pattern without them is an error.
// Text that does not match degrades the way plss.ParseTRS does: empty
// text is the undefined TRS, anything else the error TRS, unless the
// text itself is already a compiled TRS.
func Find(txt string, rgx *regexp.Regexp, cfg plss.Config) (plss.TRS, error) {
	ti, ri, si := rgx.SubexpIndex("twp"), rgx.SubexpIndex("rge"), rgx.SubexpIndex("sec")
	if ti < 0 || ri < 0 || si < 0 {
		return plss.ErrorTRS,
			fmt.Errorf("pattern %q must define named groups twp, rge and sec", rgx)
	}

	m := rgx.FindStringSubmatch(txt)
	if m == nil {
		return plss.ParseTRS(txt), nil
	}
	return plss.FromTwpRgeSec(m[ti], m[ri], m[si], cfg), nil
}

// FindAll extracts every TRS from txt. f.Pattern must define the named
// groups twp, rge and sec_list; every non-overlapping match contributes
// one TRS per section token. No matches yield an empty, non-nil list.
func FindAll(txt string, f Format, cfg plss.Config) (plss.TRSList, error) {
	rgx := f.Pattern
	if rgx == nil {
		return nil, fmt.Errorf("format has no pattern")
	}
	ti, ri, si := rgx.SubexpIndex("twp"), rgx.SubexpIndex("rge"), rgx.SubexpIndex("sec_list")
	if ti < 0 || ri < 0 || si < 0 {
		return nil,
			fmt.Errorf("pattern %q must define named groups twp, rge and sec_list", rgx)
	}

	split := f.SplitSecs
	if split == nil {
		split = SplitComma
	}

	list := make(plss.TRSList, 0)
	for _, m := range rgx.FindAllStringSubmatch(txt, -1) {
		for _, sec := range split(m[si]) {
			list = append(list, plss.FromTwpRgeSec(m[ti], m[ri], sec, cfg))
		}
	}
	return list, nil
}
