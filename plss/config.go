// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package plss

import (
	"fmt"
	"strings"
)

// The four recognized description layouts. The names describe the order
// in which the township/range (TR), section (S) and tract text (desc)
// appear.
const (
	LayoutTRSDesc = "TRS_desc"  // T154N-R97W Sec 14: NE/4
	LayoutDescSTR = "desc_STR"  // NE/4 of Sec 14, T154N-R97W
	LayoutSDescTR = "S_desc_TR" // Sec 14: NE/4, T154N-R97W
	LayoutTRDescS = "TR_desc_S" // T154N-R97W, NE/4 of Sec 14
)

// Layouts returns the recognized layout names.
func Layouts() []string {
	return []string{LayoutTRSDesc, LayoutDescSTR, LayoutSDescTR, LayoutTRDescS}
}

// Config tunes parsing behavior. The zero value is usable: north and west
// are assumed for bare township/range numbers and the layout is deduced
// per description.
type Config struct {
	// DefaultNS is the direction ("n" or "s") assumed for a township
	// number with no letter of its own.
	DefaultNS string

	// DefaultEW is the direction ("e" or "w") assumed for a range number
	// with no letter of its own.
	DefaultEW string

	// Layout forces one of the Layouts() values instead of per-description
	// deduction. Empty means deduce.
	Layout string
}

// DefaultConfig returns the stock configuration: north, west, deduced
// layout.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

// ParseConfig parses a comma-separated config token list such as "s,e" or
// "n,w,TRS_desc". Unknown tokens are an error. Empty input yields the
// default configuration.
func ParseConfig(spec string) (Config, error) {
	var c Config
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		low := strings.ToLower(tok)
		switch {
		case tok == "":
		case low == "n" || low == "s":
			c.DefaultNS = low
		case low == "e" || low == "w":
			c.DefaultEW = low
		default:
			layout, ok := matchLayout(tok)
			if !ok {
				return Config{}, fmt.Errorf("unrecognized config token %q", tok)
			}
			c.Layout = layout
		}
	}
	return c.withDefaults(), nil
}

// matchLayout resolves a layout name case-insensitively to its canonical
// spelling.
func matchLayout(tok string) (string, bool) {
	for _, l := range Layouts() {
		if strings.EqualFold(tok, l) {
			return l, true
		}
	}
	return "", false
}

func (c Config) withDefaults() Config {
	if c.DefaultNS == "" {
		c.DefaultNS = "n"
	}
	if c.DefaultEW == "" {
		c.DefaultEW = "w"
	}
	return c
}
