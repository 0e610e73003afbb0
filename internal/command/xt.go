// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/framex"
	"github.com/plssctl/plssctl/internal/config"
	"github.com/plssctl/plssctl/internal/formats"
	"github.com/plssctl/plssctl/internal/log"
	"github.com/plssctl/plssctl/internal/meta"
	"github.com/plssctl/plssctl/internal/output"
	"github.com/plssctl/plssctl/plss"
	"github.com/plssctl/plssctl/trsx"
)

// trsColumns documents the columns of the xt result frame. Unlike the other
// queries, xt builds its frame from scratch, so these are the only columns.
type trsColumns struct {
	TRS string `schema:"attr,trs"`
	Twp string `schema:"attr,twp"`
	Rge string `schema:"attr,rge"`
	Sec string `schema:"attr,sec"`
}

// xtCommandAction is the action handler for the "xt" subcommand. It scans
// raw text for TRS identifiers using a preset or custom extraction format
// and emits them as a frame, or as a single Format A line with --compact.
func xtCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "xt"

	if ShortCircuitTLDR(ctx, cmd, "xt") {
		return nil
	}
	if cmd.Bool("formats") {
		listFormats(os.Stdout)
		return nil
	}
	if DumpSchemaIfRequested(cmd, reflect.TypeOf(trsColumns{})) {
		return nil
	}

	text, err := LoadTextArg(ctx, cmd, 0)
	if err != nil {
		return err
	}

	format, err := resolveFormat(cmd)
	if err != nil {
		return err
	}

	cfg, err := ParseOptions(cmd)
	if err != nil {
		return err
	}

	list, err := trsx.FindAll(text, format, cfg)
	if err != nil {
		return err
	}
	log.Debugf("extracted %d TRS", len(list))

	// Compact mode renders the whole list as one Format A line and skips
	// the frame pipeline.
	if cmd.Bool("compact") {
		line := trsx.ToFormatA(list,
			cmd.String("sec-delim"),
			cmd.String("twprge-delim"),
			cmd.Bool("discard-errors"))
		fmt.Fprintln(os.Stdout, line)
		return nil
	}

	if cmd.Bool("discard-errors") {
		list = list.WithoutErrors()
	}

	df := trsFrame(list)
	attrs := BuildAttrs(cmd, df.Names()...)
	log.Debugf("attrs: %v", attrs)

	return output.SliceDiceSpit(df, attrs, cmd, os.Stdout)
}

// resolveFormat picks the extraction format for the run. A custom --rgx
// (with optional --split) overrides --format; otherwise the name resolves
// against the presets and then the formats.* config section.
func resolveFormat(cmd *cli.Command) (trsx.Format, error) {
	if rgx := cmd.String("rgx"); rgx != "" {
		return formats.Custom(rgx, cmd.String("split"))
	}
	return formats.Resolve(cmd.String("format"))
}

// trsFrame renders an extracted TRS list as a string frame.
func trsFrame(list plss.TRSList) dataframe.DataFrame {
	cols := []string{"trs", "twp", "rge", "sec"}

	if len(list) == 0 {
		return framex.EmptyFrame(cols)
	}

	records := make([][]string, 0, len(list)+1)
	records = append(records, cols)
	for _, trs := range list {
		records = append(records, []string{trs.String(), trs.Twp, trs.Rge, trs.Sec})
	}

	return dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
}

// listFormats writes the preset formats with their patterns and worked
// examples.
func listFormats(w io.Writer) {
	presets := trsx.Presets()
	for _, name := range formats.Names() {
		fmt.Fprintf(w, "%s  %s\n", name, presets[name].Pattern.String())
		if ex, ok := trsx.Examples[name]; ok {
			fmt.Fprintf(w, "   e.g. %q -> %s\n", ex.In, strings.Join(ex.Out, " "))
		}
	}
}

// xtCommandBuilder constructs the cli.Command for "xt", wiring metadata,
// flags, and action handlers.
func xtCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "xt",
		Usage:     "extract TRS from raw text",
		UsageText: "plssctl xt <input> [options]",
		Flags: []cli.Flag{
			NameSpacedValueChainFlagFromConfigFile("xt", meta.Config.Source,
				&cli.StringFlag{
					Name:  "format",
					Usage: "extraction format: a, b, c or a formats.* config name",
				}),
			&cli.StringFlag{
				Name:  "rgx",
				Usage: "custom extraction pattern with twp, rge and sec_list groups (overrides --format)",
			},
			&cli.StringFlag{
				Name:  "split",
				Usage: "section-list splitter for --rgx",
				Validator: func(value string) error {
					return FlagValidators(value, SplitValidator)
				},
			},
			&cli.BoolFlag{
				Name:        "formats",
				Usage:       "list the preset formats and exit",
				HideDefault: true,
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "emit one Format A line instead of a frame",
				Value: false,
			},
			&cli.StringFlag{
				Name:  "sec-delim",
				Usage: "section delimiter for --compact",
				Value: ", ",
			},
			&cli.StringFlag{
				Name:  "twprge-delim",
				Usage: "twprge group delimiter for --compact",
				Value: ", ",
			},
			&cli.BoolFlag{
				Name:  "discard-errors",
				Usage: "drop error and undefined TRS from the results",
				Value: false,
			},
		},
		Action: xtCommandAction,
		Schema: reflect.TypeOf(trsColumns{}),
		Meta:   meta,
	}).Build()
}
