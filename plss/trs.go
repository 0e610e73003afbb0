// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package plss

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Placeholder components. Error placeholders mark components that were
// present but could not be understood; undefined placeholders mark
// components that were never set at all.
const (
	ErrTwp   = "XXXz"
	ErrRge   = "XXXz"
	ErrSec   = "XX"
	UndefTwp = "___z"
	UndefRge = "___z"
	UndefSec = "__"
)

// ErrorTRS is the fully-errored identifier, rendering as "XXXzXXXzXX".
var ErrorTRS = TRS{Twp: ErrTwp, Rge: ErrRge, Sec: ErrSec}

// UndefinedTRS is the fully-unset identifier, rendering as "___z___z__".
var UndefinedTRS = TRS{Twp: UndefTwp, Rge: UndefRge, Sec: UndefSec}

// TRS identifies a section of land by township, range and section. Twp is
// the township number plus n/s ("154n"), Rge the range number plus e/w
// ("97w"), and Sec the zero-padded two-digit section ("01"). Any component
// may instead hold one of the placeholder values above.
type TRS struct {
	Twp string
	Rge string
	Sec string
}

// trsRgx unpacks a compiled TRS string, placeholders included. The section
// is optional so that bare twprge strings ("154n97w") parse with an
// undefined section.
var trsRgx = regexp.MustCompile(
	`^(\d{1,3}[NSns]|XXXz|___z)(\d{1,3}[EWew]|XXXz|___z)(\d{1,2}|XX|__)?$`)

// ParseTRS parses a compiled TRS string such as "154n97w14". Empty or
// whitespace-only input yields UndefinedTRS. Input that does not unpack
// yields ErrorTRS. Components are normalized: direction letters lowered,
// leading zeros stripped from township and range, section zero-padded.
func ParseTRS(s string) TRS {
	s = strings.TrimSpace(s)
	if s == "" {
		return UndefinedTRS
	}
	m := trsRgx.FindStringSubmatch(s)
	if m == nil {
		return ErrorTRS
	}
	return TRS{
		Twp: normTwpRge(m[1]),
		Rge: normTwpRge(m[2]),
		Sec: normSec(m[3]),
	}
}

// FromTwpRgeSec builds a TRS from three loose components, applying the
// cfg defaults when a direction letter is missing. Each component
// degrades independently: empty input becomes the undefined placeholder
// and unusable input the error placeholder.
//
// The section must be at most two digits; anything longer or non-numeric
// is an error section.
func FromTwpRgeSec(twp, rge, sec string, cfg Config) TRS {
	cfg = cfg.withDefaults()
	return TRS{
		Twp: buildTwpRge(twp, "ns", cfg.DefaultNS, UndefTwp, ErrTwp),
		Rge: buildTwpRge(rge, "ew", cfg.DefaultEW, UndefRge, ErrRge),
		Sec: buildSec(sec),
	}
}

// TwpRge returns the combined township/range portion ("154n97w").
func (t TRS) TwpRge() string {
	return t.Twp + t.Rge
}

// String returns the compiled TRS ("154n97w14").
func (t TRS) String() string {
	return t.Twp + t.Rge + t.Sec
}

// SecNum returns the section as an integer, or 0 for placeholder sections.
func (t TRS) SecNum() int {
	n, err := strconv.Atoi(t.Sec)
	if err != nil {
		return 0
	}
	return n
}

// IsError reports whether any component holds an error placeholder.
func (t TRS) IsError() bool {
	return t.Twp == ErrTwp || t.Rge == ErrRge || t.Sec == ErrSec
}

// IsUndefined reports whether any component holds an undefined placeholder.
func (t TRS) IsUndefined() bool {
	return t.Twp == UndefTwp || t.Rge == UndefRge || t.Sec == UndefSec
}

// TRSList is an ordered collection of TRS identifiers. Duplicates are
// allowed and order is meaningful.
type TRSList []TRS

// Strings returns the compiled string of every element, in order.
func (l TRSList) Strings() []string {
	out := make([]string, len(l))
	for i, t := range l {
		out[i] = t.String()
	}
	return out
}

// WithoutErrors returns a new list holding only fully-valid identifiers.
// Elements with any error or undefined component are dropped.
func (l TRSList) WithoutErrors() TRSList {
	out := make(TRSList, 0, len(l))
	for _, t := range l {
		if t.IsError() || t.IsUndefined() {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TwpRgeGroup is one twprge bucket produced by GroupByTwpRge.
type TwpRgeGroup struct {
	TwpRge string
	TRS    TRSList
}

// GroupByTwpRge buckets the list by township/range, preserving the order
// in which each twprge first appears and the element order within each
// bucket.
func (l TRSList) GroupByTwpRge() []TwpRgeGroup {
	var groups []TwpRgeGroup
	index := map[string]int{}
	for _, t := range l {
		tr := t.TwpRge()
		i, ok := index[tr]
		if !ok {
			i = len(groups)
			index[tr] = i
			groups = append(groups, TwpRgeGroup{TwpRge: tr})
		}
		groups[i].TRS = append(groups[i].TRS, t)
	}
	return groups
}

// normTwpRge normalizes an unpacked township or range component. The
// placeholders pass through untouched.
func normTwpRge(p string) string {
	if p == ErrTwp || p == UndefTwp {
		return p
	}
	p = strings.ToLower(p)
	return stripZeros(p[:len(p)-1]) + p[len(p)-1:]
}

// normSec normalizes an unpacked section component.
func normSec(p string) string {
	switch p {
	case "":
		return UndefSec
	case ErrSec, UndefSec:
		return p
	}
	n, _ := strconv.Atoi(p) //nolint:errcheck // digits by regex
	return fmt.Sprintf("%02d", n)
}

var (
	twpRgeNumRgx = regexp.MustCompile(`^(\d{1,3})\s*([A-Za-z]?)$`)
	secNumRgx    = regexp.MustCompile(`^\d{1,2}$`)
)

// buildTwpRge normalizes a loose township or range component. dirs holds
// the two legal direction letters, def the default applied to bare
// numbers.
func buildTwpRge(raw, dirs, def, undef, errv string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return undef
	}
	m := twpRgeNumRgx.FindStringSubmatch(raw)
	if m == nil {
		return errv
	}
	dir := strings.ToLower(m[2])
	if dir == "" {
		dir = def
	}
	if !strings.Contains(dirs, dir) {
		return errv
	}
	return stripZeros(m[1]) + dir
}

// buildSec normalizes a loose section component to two digits.
func buildSec(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return UndefSec
	}
	if !secNumRgx.MatchString(raw) {
		return ErrSec
	}
	n, _ := strconv.Atoi(raw) //nolint:errcheck // digits by regex
	return fmt.Sprintf("%02d", n)
}

// stripZeros drops leading zeros but never empties the number.
func stripZeros(num string) string {
	trimmed := strings.TrimLeft(num, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
