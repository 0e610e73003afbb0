// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"reflect"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/framex"
	"github.com/plssctl/plssctl/internal/attrs"
	"github.com/plssctl/plssctl/internal/dataset"
	"github.com/plssctl/plssctl/internal/filters"
	"github.com/plssctl/plssctl/internal/log"
	"github.com/plssctl/plssctl/internal/meta"
	"github.com/plssctl/plssctl/internal/output"
	"github.com/plssctl/plssctl/internal/sniff"
	"github.com/plssctl/plssctl/internal/source"
	"github.com/plssctl/plssctl/plss"
)

// sniffSampleRows is how many leading rows feed the column sniffer. Enough
// to outvote a stray header-ish value, small enough to stay cheap.
const sniffSampleRows = 5

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// DumpSchemaIfRequested writes the appended-column schema for the provided
// type to stdout when --schema is set, and returns true if it handled the
// request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type) bool {
	if cmd.Bool("schema") {
		output.DumpSchema("", t, nil)
		return true
	}
	return false
}

// EmitFrame runs the result frame through the common output pipeline:
// row filters, attribute selection and transforms, sort, render, and the
// optional SQLite save.
func EmitFrame(df dataframe.DataFrame, al attrs.AttrList, cmd *cli.Command) error {
	if df.Error() != nil {
		return fmt.Errorf("failed to build result frame: %w", df.Error())
	}
	return output.SliceDiceSpit(df, al, cmd, os.Stdout)
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// LoadDatasetArg loads the command's nth positional dataset argument and
// applies any pre-parse (_key) row filters so the parse stages work a
// smaller frame.
func LoadDatasetArg(ctx context.Context, cmd *cli.Command, n int) (dataframe.DataFrame, source.Ref, error) {
	arg := cmd.Args().Get(n)
	if arg == "" {
		return dataframe.DataFrame{}, source.Ref{},
			fmt.Errorf("missing dataset argument (see plssctl %s --help)", cmd.Name)
	}

	df, ref, err := dataset.Load(ctx, cmd, arg)
	if err != nil {
		return df, ref, err
	}
	log.Debugf("loaded %s: %d rows, %d cols", ref.Path, df.Nrow(), df.Ncol())

	df, err = applyPreParseFilters(df, cmd)
	return df, ref, err
}

// LoadTextArg fetches the command's nth positional argument as raw text,
// still honoring the source schemes and wrap layers (s3, stdin, .gz, .enc).
func LoadTextArg(ctx context.Context, cmd *cli.Command, n int) (string, error) {
	arg := cmd.Args().Get(n)
	if arg == "" {
		return "", fmt.Errorf("missing input argument (see plssctl %s --help)", cmd.Name)
	}

	ref := source.ParseRef(arg)
	data, err := source.Load(ctx, cmd, ref)
	if err != nil {
		return "", err
	}
	log.Debugf("loaded %s: %d bytes of %s", ref.Path, len(data), ref.Format)

	return string(data), nil
}

// ParseOptions builds the parse configuration from the --config token list
// with any per-flag --ns/--ew/--layout values layered on top.
func ParseOptions(cmd *cli.Command) (plss.Config, error) {
	cfg, err := plss.ParseConfig(cmd.String("config"))
	if err != nil {
		return plss.Config{}, err
	}

	if ns := cmd.String("ns"); ns != "" {
		cfg.DefaultNS = strings.ToLower(ns)
	}
	if ew := cmd.String("ew"); ew != "" {
		cfg.DefaultEW = strings.ToLower(ew)
	}

	// Run the layout back through the token parser so any-case spellings
	// come out canonical.
	if layout := cmd.String("layout"); layout != "" {
		lcfg, err := plss.ParseConfig(layout)
		if err != nil {
			return plss.Config{}, err
		}
		cfg.Layout = lcfg.Layout
	}

	return cfg, nil
}

// ResolveTextColumn returns the column a command should parse: --col when
// set (an error if the frame lacks it), otherwise the sniffer's pick.
func ResolveTextColumn(df dataframe.DataFrame, cmd *cli.Command) (string, error) {
	if col := cmd.String("col"); col != "" {
		if !framex.HasColumn(df, col) {
			return "", fmt.Errorf("column %q not in dataset (columns: %s)",
				col, strings.Join(df.Names(), ", "))
		}
		return col, nil
	}

	col := sniff.Column(df.Names(), sampleValues(df, sniffSampleRows))
	if col == "" {
		return "", fmt.Errorf("no land-description column found; name one with --col")
	}
	log.Debugf("sniffed column: %s", col)

	return col, nil
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr plssctl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "plssctl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// applyPreParseFilters subsets the input frame to the rows matching the
// pre-parse (_key) filters from --filter. Post-parse filters in the set are
// left for the output pipeline.
func applyPreParseFilters(df dataframe.DataFrame, cmd *cli.Command) (dataframe.DataFrame, error) {
	flts := filters.BuildFilters(cmd.String("filter"))

	pre := false
	for _, f := range flts {
		if f.PreParse {
			pre = true
			break
		}
	}
	if !pre || df.Nrow() == 0 {
		return df, nil
	}

	raw, err := dataset.FrameToJSON(df)
	if err != nil {
		return df, err
	}

	idx := filters.FilterRecords(gjson.ParseBytes(raw), flts)
	log.Debugf("pre-parse filters kept %d of %d rows", len(idx), df.Nrow())

	if len(idx) == 0 {
		return framex.EmptyFrame(df.Names()), nil
	}

	sub := df.Subset(idx)
	if sub.Err != nil {
		return df, fmt.Errorf("failed to subset dataset: %w", sub.Err)
	}

	return sub, nil
}

// sampleValues collects up to n leading values per column for the sniffer.
func sampleValues(df dataframe.DataFrame, n int) map[string][]string {
	if df.Nrow() < n {
		n = df.Nrow()
	}

	sample := make(map[string][]string, df.Ncol())
	for _, name := range df.Names() {
		col := df.Col(name)
		for i := 0; i < n; i++ {
			if v := col.Elem(i).String(); v != "" {
				sample[name] = append(sample[name], v)
			}
		}
	}

	return sample
}

// splitCommaList splits a comma-separated flag value into trimmed, non-empty
// tokens.
func splitCommaList(spec string) []string {
	//nolint:prealloc
	var out []string
	for _, tok := range strings.Split(spec, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
