// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package plss

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Description is a full land description parsed into tracts. Source is a
// provenance label for callers that track where the text came from (a row
// index, a file name); parsing never sets it. Layout records the layout
// that was used, whether forced or deduced.
type Description struct {
	Source string
	Text   string
	Layout string
	Tracts []Tract
	WFlags []string
	EFlags []string
}

// Description text is tokenized into township/range and section hits, and
// the layout decides which direction each kind of token binds: in
// TRS_desc and TR_desc_S a section belongs to the nearest twprge before
// it, in desc_STR and S_desc_TR to the nearest one after it. Tract text
// sits after its section token in TRS_desc and S_desc_TR, before it in
// the other two.

var (
	// twpRgeRgx matches the worded and punctuated township/range forms:
	// "T154N-R97W", "154N-97W", "Township 154 North, Range 97 West",
	// "Twp. 154 N., Rge. 97 W.".
	twpRgeRgx = regexp.MustCompile(
		`(?i)\b(?:T(?:wp|ownship)?\.?\s*)?(\d{1,3})\s*` +
			`(N(?:orth)?|S(?:outh)?)[.,;\s-]*` +
			`(?:R(?:ge|ange)?\.?\s*)?(\d{1,3})\s*` +
			`(E(?:ast)?|W(?:est)?)\b`)

	// compiledTRSRgx matches the compiled form run together, with or
	// without a trailing section: "154n97w14", "154n97w". The worded
	// regex cannot take this case because a section digit directly after
	// the range letter defeats its closing word boundary.
	compiledTRSRgx = regexp.MustCompile(
		`(?i)\b(\d{1,3})([ns])(\d{1,3})([ew])(\d{1,2})?\b`)

	// secRgx matches one section reference or a group of them:
	// "Sec 14", "Section 14", "§14", "Sections 14 and 15", "Secs. 1 - 3".
	// Every number must end at a word boundary so that a compiled twprge
	// after a comma ("Sec 14, 155n98w") is not raided for digits.
	secRgx = regexp.MustCompile(
		`(?i)(?:§+\s*|\bSec(?:tion)?s?\.?\s*)` +
			`(\d{1,2}\b(?:\s*(?:,|and|&|-|–|through|thru)\s*` +
			`(?:§+\s*|Sec(?:tion)?s?\.?\s*)?\d{1,2}\b)*)`)

	secListSplitRgx = regexp.MustCompile(`(?i)\s*(?:,|\band\b|&)\s*`)
	secRangeRgx     = regexp.MustCompile(
		`(?i)^\D*(\d{1,2})\s*(?:-|–|through|thru)\s*\D*(\d{1,2})\D*$`)
	secSingleRgx = regexp.MustCompile(`^\D*(\d{1,2})\D*$`)

	// descEdgeRgx trims separator runs and dangling connector words off
	// the edges of a tract text segment ("NE/4 of" -> "NE/4").
	descEdgeRgx = regexp.MustCompile(
		`(?i)^(?:[\s,;:.–-]|\b(?:of|in|the|being|situated|lying)\b)+` +
			`|(?:[\s,;:.–-]|\b(?:of|in|the|being|situated|lying)\b)+$`)
)

// ParseDescription parses a full land description, possibly holding many
// tracts, into a Description. It never returns nil: text with no
// recognizable township, range or section yields a single error tract
// carrying the no_landdesc_found flag. cfg.Layout forces a layout;
// otherwise the layout is deduced from the token order of the text.
func ParseDescription(text string, cfg Config) *Description {
	cfg = cfg.withDefaults()
	d := &Description{Text: strings.TrimSpace(text)}

	toks := scanTokens(text)
	d.Layout = cfg.Layout
	if d.Layout == "" {
		d.Layout = deduceLayout(text, toks)
	}

	if len(toks) == 0 {
		t := Tract{TRS: ErrorTRS, Desc: d.Text}
		t.EFlags = append(t.EFlags, FlagNoLandDesc)
		d.Tracts = []Tract{t}
		d.rollUp()
		return d
	}

	descAfter := d.Layout == LayoutTRSDesc || d.Layout == LayoutSDescTR
	twpRgeBefore := d.Layout == LayoutTRSDesc || d.Layout == LayoutTRDescS
	d.Tracts = buildTracts(text, toks, cfg, descAfter, twpRgeBefore)
	d.rollUp()
	return d
}

// TRSList returns the TRS of every tract, in order.
func (d *Description) TRSList() TRSList {
	out := make(TRSList, 0, len(d.Tracts))
	for _, t := range d.Tracts {
		out = append(out, t.TRS)
	}
	return out
}

// ContainsTRS reports whether any tract's compiled TRS appears in the
// sought set. Comparison is lowercased on both sides.
func (d *Description) ContainsTRS(sought ...string) bool {
	have := make(map[string]struct{}, len(d.Tracts))
	for _, t := range d.Tracts {
		have[strings.ToLower(t.TRS.String())] = struct{}{}
	}
	for _, s := range sought {
		if _, ok := have[strings.ToLower(strings.TrimSpace(s))]; ok {
			return true
		}
	}
	return false
}

// rollUp copies every tract's flags onto the description, deduplicated
// and order-preserving.
func (d *Description) rollUp() {
	var w, e []string
	for _, t := range d.Tracts {
		w = append(w, t.WFlags...)
		e = append(e, t.EFlags...)
	}
	d.WFlags, _ = dedupe(w)
	d.EFlags, _ = dedupe(e)
}

// descToken is one township/range or section hit in the text. A compiled
// TRS ("154n97w14") is both at once: isTwpRge with its own secs.
type descToken struct {
	start, end int
	isTwpRge   bool
	twp, rge   string   // loose components, e.g. "154n", "97w"
	secs       []string // raw section numbers
	multi      bool
}

// scanTokens finds every township/range and section token, in text order.
// Hits swallowed by an earlier, longer hit are dropped.
func scanTokens(text string) []descToken {
	var hits []descToken
	for _, m := range twpRgeRgx.FindAllStringSubmatchIndex(text, -1) {
		hits = append(hits, descToken{
			start: m[0], end: m[1], isTwpRge: true,
			twp: text[m[2]:m[3]] + normDir(text[m[4]:m[5]]),
			rge: text[m[6]:m[7]] + normDir(text[m[8]:m[9]]),
		})
	}
	for _, m := range compiledTRSRgx.FindAllStringSubmatchIndex(text, -1) {
		tk := descToken{
			start: m[0], end: m[1], isTwpRge: true,
			twp: text[m[2]:m[3]] + normDir(text[m[4]:m[5]]),
			rge: text[m[6]:m[7]] + normDir(text[m[8]:m[9]]),
		}
		if m[10] >= 0 {
			tk.secs = []string{text[m[10]:m[11]]}
		}
		hits = append(hits, tk)
	}
	for _, m := range secRgx.FindAllStringSubmatchIndex(text, -1) {
		secs, multi := expandSecList(text[m[2]:m[3]])
		if len(secs) == 0 {
			continue
		}
		hits = append(hits, descToken{start: m[0], end: m[1], secs: secs, multi: multi})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].start != hits[j].start {
			return hits[i].start < hits[j].start
		}
		return hits[i].end > hits[j].end
	})
	var toks []descToken
	lastEnd := -1
	for _, h := range hits {
		if h.start < lastEnd {
			continue
		}
		toks = append(toks, h)
		lastEnd = h.end
	}
	return toks
}

// expandSecList turns a captured section blob into raw section numbers,
// expanding ranges ("1 - 3" -> 1,2,3) and lists ("14 and 15"). It reports
// whether the blob named more than one section.
func expandSecList(blob string) ([]string, bool) {
	var secs []string
	for _, item := range secListSplitRgx.Split(blob, -1) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if m := secRangeRgx.FindStringSubmatch(item); m != nil {
			lo, _ := strconv.Atoi(m[1]) //nolint:errcheck // digits by regex
			hi, _ := strconv.Atoi(m[2]) //nolint:errcheck // digits by regex
			if hi < lo {
				secs = append(secs, m[1], m[2])
				continue
			}
			for n := lo; n <= hi; n++ {
				secs = append(secs, strconv.Itoa(n))
			}
			continue
		}
		if m := secSingleRgx.FindStringSubmatch(item); m != nil {
			secs = append(secs, m[1])
		}
	}
	return secs, len(secs) > 1
}

// deduceLayout picks a layout from the order of the first twprge and
// section hits and from where the free text sits between them.
func deduceLayout(text string, toks []descToken) string {
	firstTR, firstSec := -1, -1
	for i, tk := range toks {
		if tk.isTwpRge && firstTR == -1 {
			firstTR = i
		}
		if len(tk.secs) > 0 && firstSec == -1 {
			firstSec = i
		}
	}
	switch {
	case firstTR != -1 && firstTR == firstSec:
		// Compiled TRS with its section attached reads as TRS_desc.
		return LayoutTRSDesc
	case firstSec == -1:
		return LayoutTRSDesc
	case firstTR == -1 || firstSec < firstTR:
		if cleanDesc(text[:toks[firstSec].start]) == "" {
			return LayoutSDescTR
		}
		return LayoutDescSTR
	default:
		if cleanDesc(text[toks[firstTR].end:toks[firstSec].start]) == "" {
			return LayoutTRSDesc
		}
		return LayoutTRDescS
	}
}

// buildTracts walks the tokens and emits one tract per section number.
func buildTracts(text string, toks []descToken, cfg Config, descAfter, twpRgeBefore bool) []Tract {
	// gov[i] is the index of the twprge token governing token i, -1 when
	// no twprge lies in the binding direction.
	gov := make([]int, len(toks))
	if twpRgeBefore {
		last := -1
		for i, tk := range toks {
			if tk.isTwpRge {
				last = i
			}
			gov[i] = last
		}
	} else {
		next := -1
		for i := len(toks) - 1; i >= 0; i-- {
			if toks[i].isTwpRge {
				next = i
			}
			gov[i] = next
		}
	}

	var tracts []Tract
	for i, tk := range toks {
		if len(tk.secs) == 0 {
			continue
		}
		g := gov[i]
		if tk.isTwpRge {
			// A compiled TRS token governs its own section.
			g = i
		}
		desc := segmentText(text, toks, i, descAfter)
		for _, sec := range tk.secs {
			tracts = append(tracts, makeTract(toks, g, sec, desc, tk.multi, cfg))
		}
	}

	if len(tracts) == 0 {
		// Only bare twprge tokens: one undefined-section tract each, with
		// whatever text trails it.
		for i, tk := range toks {
			if !tk.isTwpRge {
				continue
			}
			desc := segmentText(text, toks, i, true)
			tracts = append(tracts, makeTract(toks, i, "", desc, false, cfg))
		}
	}
	return tracts
}

// segmentText extracts the tract text segment belonging to token i: the
// text up to the neighboring token on the side the layout dictates.
func segmentText(text string, toks []descToken, i int, after bool) string {
	if after {
		end := len(text)
		if i+1 < len(toks) {
			end = toks[i+1].start
		}
		return cleanDesc(text[toks[i].end:end])
	}
	start := 0
	if i > 0 {
		start = toks[i-1].end
	}
	return cleanDesc(text[start:toks[i].start])
}

// makeTract builds one tract from a governing twprge token index (-1 for
// none), a raw section number and its text segment.
func makeTract(toks []descToken, gov int, sec, desc string, multi bool, cfg Config) Tract {
	var twp, rge string
	if gov >= 0 {
		twp, rge = toks[gov].twp, toks[gov].rge
	}
	t := ParseTract(desc, cfg)
	t.TRS = FromTwpRgeSec(twp, rge, sec, cfg)
	if gov < 0 {
		t.TRS.Twp, t.TRS.Rge = ErrTwp, ErrRge
		t.EFlags = append(t.EFlags, FlagTRSError)
	}
	if multi {
		t.WFlags = append(t.WFlags, FlagMultiSec)
	}
	if t.TRS.SecNum() > 36 {
		t.WFlags = append(t.WFlags, FlagSecOver36)
	}
	return t
}

func cleanDesc(s string) string {
	return strings.TrimSpace(descEdgeRgx.ReplaceAllString(s, ""))
}

func normDir(s string) string {
	return strings.ToLower(s[:1])
}
