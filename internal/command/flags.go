// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var (
	schemaFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "schema",
		Usage:       "dump the appended columns and exit",
		HideDefault: true,
	}

	tldrFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
)

// NewGlobalFlags constructs the flag set shared by every dataset query
// command. params[0] is the command name (config namespace) and params[1]
// is the config file; when both are present each string flag resolves
// through the namespaced-then-bare YAML value chain (tq.attrs, then attrs).
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "parse config tokens, e.g. 's,e,TRS_desc'",
		},
		&cli.StringFlag{
			Name:  "ew",
			Usage: "direction assumed for bare range numbers (e or w, default w)",
			Validator: func(value string) error {
				return FlagValidators(value, EWValidator)
			},
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.StringFlag{
			Name:  "ns",
			Usage: "direction assumed for bare township numbers (n or s, default n)",
			Validator: func(value string) error {
				return FlagValidators(value, NSValidator)
			},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:        "padding",
			Usage:       "extra left padding between text columns",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:  "save",
			Usage: "persist result rows to a sqlite db, path.db[:table]",
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   true,
		},
	}

	if len(params) == 2 {
		for i, flag := range flags {
			if sf, ok := flag.(*cli.StringFlag); ok {
				flags[i] = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], sf)
			}
		}
	}

	return
}

// NewInputFlags constructs the flags that shape dataset loading: the gjson
// path for JSON records, the xpath for XML rows, and the envelope
// passphrase. Like NewGlobalFlags, params optionally wire the config file
// value chains.
func NewInputFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "jpath",
			Usage: "gjson path to the records array in json input",
		},
		&cli.StringFlag{
			Name:  "xpath",
			Usage: "xpath to the row nodes in xml input",
		},
		&cli.StringFlag{
			Name:  "passphrase",
			Usage: "passphrase for .enc inputs",
		},
	}

	if len(params) == 2 {
		for i, flag := range flags {
			if sf, ok := flag.(*cli.StringFlag); ok {
				flags[i] = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], sf)
			}
		}
	}

	return
}

// NewColFlag constructs the --col flag naming the column that carries
// land-description text. params[1] is the config file.
func NewColFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "col",
		Usage: "column holding the land-description text (default: sniffed)",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewSuffixFlag constructs the --suffix flag used to rename appended columns
// that collide with input columns. params[1] is the config file.
func NewSuffixFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "suffix",
		Usage: "suffix appended to result columns that collide with input columns",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewLayoutFlag constructs the --layout flag that forces a description
// layout instead of per-description deduction. params[1] is the config file.
func NewLayoutFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "layout",
		Usage: "force a description layout instead of deducing one",
		Validator: func(value string) error {
			return FlagValidators(value, LayoutValidator)
		},
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas checks if the given executable exists on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
