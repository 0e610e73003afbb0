// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package plss

import (
	"regexp"
	"strings"
)

// The aliquot engine divides a section on an 8x8 grid of sub-cells, where
// one quarter-quarter (QQ) covers an aligned 2x2 block. An aliquot chain
// like "E/2NE/4SE/4" is applied right to left, each token shrinking the
// working rectangle. A final rectangle that still aligns to whole QQ
// blocks explodes into QQ names ("NENE", "SWSE", ...); anything finer
// collapses to the compact form ("E2NESE") instead of subdividing further.

// gridSize is the sub-cell resolution per side. QQ blocks are 2x2.
const gridSize = 8

type gridRect struct {
	x0, y0, x1, y1 int // inclusive; x grows west->east, y north->south
}

func wholeSection() gridRect {
	return gridRect{0, 0, gridSize - 1, gridSize - 1}
}

// quadrants in pyTRS emission order. dx/dy locate the quadrant within its
// parent: dx 1 = east half, dy 1 = south half.
var quadrants = []struct {
	name   string
	dx, dy int
}{
	{"NE", 1, 0},
	{"NW", 0, 0},
	{"SE", 1, 1},
	{"SW", 0, 1},
}

// aliquotTokenRgx matches one chain token at the start of its input. The
// quarter fraction is optional so compact forms ("NENE") tokenize too;
// half tokens require their 2 to keep bare letters from being guessed at.
var aliquotTokenRgx = regexp.MustCompile(
	`^(?:(NE|NW|SE|SW)(?:/4|4)?|([NSEW])(?:/2|2)|(ALL))`)

// tokenizeAliquot splits a normalized segment into chain tokens. It
// reports false unless the entire segment is consumed.
func tokenizeAliquot(seg string) ([]string, bool) {
	var tokens []string
	for seg != "" {
		m := aliquotTokenRgx.FindStringSubmatch(seg)
		if m == nil {
			return nil, false
		}
		switch {
		case m[1] != "":
			tokens = append(tokens, m[1])
		case m[2] != "":
			tokens = append(tokens, m[2]+"2")
		default:
			tokens = append(tokens, "ALL")
		}
		seg = seg[len(m[0]):]
	}
	return tokens, len(tokens) > 0
}

// applyToken shrinks r by one chain token. It reports false once the
// rectangle is too fine to halve again.
func applyToken(r gridRect, tok string) (gridRect, bool) {
	if tok == "ALL" {
		return r, true
	}
	for _, half := range tok {
		w := r.x1 - r.x0 + 1
		h := r.y1 - r.y0 + 1
		switch half {
		case 'N':
			if h < 2 {
				return r, false
			}
			r.y1 = r.y0 + h/2 - 1
		case 'S':
			if h < 2 {
				return r, false
			}
			r.y0 = r.y1 - h/2 + 1
		case 'E':
			if w < 2 {
				return r, false
			}
			r.x0 = r.x1 - w/2 + 1
		case 'W':
			if w < 2 {
				return r, false
			}
			r.x1 = r.x0 + w/2 - 1
		case '2', '4':
			// Fraction digits carry no geometry of their own.
		}
	}
	return r, true
}

// alignedQQ reports whether r covers whole 2x2 QQ blocks only.
func alignedQQ(r gridRect) bool {
	return r.x0%2 == 0 && r.y0%2 == 0 && r.x1%2 == 1 && r.y1%2 == 1
}

// explodeQQ lists the QQ names covered by r, quarter-major in pyTRS order
// (NE, NW, SE, SW; same order within each quarter).
func explodeQQ(r gridRect) []string {
	var qqs []string
	for _, q := range quadrants {
		qx0, qy0 := q.dx*2, q.dy*2 // quarter origin in QQ coords
		for _, sub := range quadrants {
			qx, qy := qx0+sub.dx, qy0+sub.dy
			// QQ block (qx,qy) spans sub-cells (2qx,2qy)..(2qx+1,2qy+1).
			if 2*qx >= r.x0 && 2*qx+1 <= r.x1 && 2*qy >= r.y0 && 2*qy+1 <= r.y1 {
				qqs = append(qqs, sub.name+q.name)
			}
		}
	}
	return qqs
}

// compactChain renders tokens in compact form: quarters keep their name,
// halves keep letter+2, fractions drop ("E/2NE/4SE/4" -> "E2NESE").
func compactChain(tokens []string) string {
	return strings.Join(tokens, "")
}

var aliquotNormalizers = []struct {
	rgx *regexp.Regexp
	rep string
}{
	{regexp.MustCompile(`¼`), "/4"},
	{regexp.MustCompile(`½`), "/2"},
	{regexp.MustCompile(`\bNORTH\s*EAST\b`), "NE"},
	{regexp.MustCompile(`\bNORTH\s*WEST\b`), "NW"},
	{regexp.MustCompile(`\bSOUTH\s*EAST\b`), "SE"},
	{regexp.MustCompile(`\bSOUTH\s*WEST\b`), "SW"},
	{regexp.MustCompile(`\bNORTH\b`), "N"},
	{regexp.MustCompile(`\bSOUTH\b`), "S"},
	{regexp.MustCompile(`\bEAST\b`), "E"},
	{regexp.MustCompile(`\bWEST\b`), "W"},
	{regexp.MustCompile(`\bONE\s*-?\s*QUARTER\b|\bQUARTER\b|\bQTR\b`), "/4"},
	{regexp.MustCompile(`\bONE\s*-?\s*HALF\b|\bHALF\b`), "/2"},
	{regexp.MustCompile(`\bOF\s+THE\b|\bOF\b|\bTHE\b`), " "},
}

// normalizeAliquot rewrites word-form aliquot text into chain notation:
// "Southwest Quarter of the Northeast Quarter" -> "SW/4NE/4".
func normalizeAliquot(seg string) string {
	s := strings.ToUpper(strings.TrimSpace(seg))
	for _, n := range aliquotNormalizers {
		s = n.rgx.ReplaceAllString(s, n.rep)
	}
	s = strings.ReplaceAll(s, ".", "")
	return strings.Join(strings.Fields(s), "")
}

// parseAliquot parses one comma-free segment of tract text. Recognized
// segments yield either exploded QQ names or, when finer than a QQ, the
// single compact form. Unrecognized segments yield nothing.
func parseAliquot(seg string) []string {
	norm := normalizeAliquot(seg)
	if norm == "" {
		return nil
	}
	tokens, ok := tokenizeAliquot(norm)
	if !ok {
		return nil
	}
	r := wholeSection()
	fine := false
	for i := len(tokens) - 1; i >= 0; i-- {
		var applied bool
		if r, applied = applyToken(r, tokens[i]); !applied {
			fine = true
			break
		}
	}
	if fine || !alignedQQ(r) {
		return []string{compactChain(tokens)}
	}
	return explodeQQ(r)
}
