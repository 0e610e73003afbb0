// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package formats

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/plssctl/plssctl/internal/config"
	"github.com/plssctl/plssctl/trsx"
)

// Resolve takes a format name and returns the extraction format it names.
// The name can be in any of the forms shown below.
//
//	empty  - preset a.
//	a|b|c  - the named preset.
//	name   - a formats.<name> entry from the config file.
func Resolve(name string) (trsx.Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	// Short circuit if no name was provided and return the default preset.
	if name == "" {
		name = "a"
	}

	if f, ok := trsx.Presets()[name]; ok {
		return f, nil
	}

	return resolveConfigFormat(name)
}

// resolveConfigFormat looks the name up under the formats config section.
// Two keys describe a format: formats.<name>.rgx (required) and
// formats.<name>.split (optional, default comma).
func resolveConfigFormat(name string) (trsx.Format, error) {
	rgx, err := config.GetString("formats." + name + ".rgx")
	if err != nil {
		return trsx.Format{}, fmt.Errorf("failed to find format %q in presets or config", name)
	}

	split, _ := config.GetString("formats."+name+".split", "comma")

	return Custom(rgx, split)
}

// Custom compiles a user-supplied pattern and splitter name into a Format.
// The pattern must define the named groups twp, rge and sec_list.
func Custom(rgx string, split string) (trsx.Format, error) {
	re, err := regexp.Compile(rgx)
	if err != nil {
		return trsx.Format{}, fmt.Errorf("invalid format pattern: %w", err)
	}

	if re.SubexpIndex("twp") < 0 || re.SubexpIndex("rge") < 0 ||
		re.SubexpIndex("sec_list") < 0 {
		return trsx.Format{},
			fmt.Errorf("pattern %q must define named groups twp, rge and sec_list", rgx)
	}

	splitter := trsx.SplitComma
	if split != "" {
		splitter, err = trsx.SplitterFor(split)
		if err != nil {
			return trsx.Format{}, err
		}
	}

	return trsx.Format{Pattern: re, SplitSecs: splitter}, nil
}

// Names returns the preset format names in stable order. Used by the
// xt --formats listing.
func Names() []string {
	names := make([]string, 0, len(trsx.Presets()))
	for name := range trsx.Presets() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
