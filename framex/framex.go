// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package framex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/plssctl/plssctl/plss"
)

// DefaultSuffix disambiguates appended column names that collide with
// existing ones.
const DefaultSuffix = "_parsed"

// Options tunes the frame operations.
type Options struct {
	// Suffix is appended to a parsed column name when the frame already
	// has a column of that name. Empty means DefaultSuffix.
	Suffix string

	// Config is handed to the plss parsers.
	Config plss.Config
}

func (o Options) suffix() string {
	if o.Suffix == "" {
		return DefaultSuffix
	}
	return o.Suffix
}

// Column names appended by ParseTracts.
const (
	ColLots   = "lots"
	ColQQs    = "qqs"
	ColWFlags = "warning_flags"
	ColEFlags = "error_flags"
)

// Column names appended by ParseDescs, ahead of the ParseTracts four.
// ind is the 0-based source row index, kept as the provenance key after
// the explode.
const (
	ColInd  = "ind"
	ColTRS  = "trs"
	ColTwp  = "twp"
	ColRge  = "rge"
	ColSec  = "sec"
	ColDesc = "desc"
)

func tractCols() []string {
	return []string{ColLots, ColQQs, ColWFlags, ColEFlags}
}

func descCols() []string {
	return []string{ColInd, ColTRS, ColTwp, ColRge, ColSec, ColDesc,
		ColLots, ColQQs, ColWFlags, ColEFlags}
}

// ParseTracts parses each cell of tractCol as single-tract text and
// appends the lots, qqs, warning_flags and error_flags columns, each
// cell a ", "-joined list. Row count and order are unchanged.
func ParseTracts(df dataframe.DataFrame, tractCol string, opts Options) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, fmt.Errorf("bad frame: %w", df.Err)
	}
	if !HasColumn(df, tractCol) {
		return df, fmt.Errorf("no column %q in frame", tractCol)
	}

	cells := df.Col(tractCol).Records()
	parsed := map[string][]string{}
	for _, name := range tractCols() {
		parsed[name] = make([]string, len(cells))
	}
	for i, cell := range cells {
		tr := plss.ParseTract(cell, opts.Config)
		parsed[ColLots][i] = strings.Join(tr.Lots, ", ")
		parsed[ColQQs][i] = strings.Join(tr.QQs, ", ")
		parsed[ColWFlags][i] = strings.Join(tr.WFlags, ", ")
		parsed[ColEFlags][i] = strings.Join(tr.EFlags, ", ")
	}

	out := df
	for _, name := range tractCols() {
		col := name
		if HasColumn(df, col) {
			col += opts.suffix()
		}
		out = out.Mutate(series.New(parsed[name], series.String, col))
		if out.Err != nil {
			return out, fmt.Errorf("appending %q: %w", col, out.Err)
		}
	}
	return out, nil
}

// ParseDescs parses each cell of descCol as a full land description and
// explodes the frame to one row per parsed tract: the original row's
// columns followed by ind, trs, twp, rge, sec, desc, lots, qqs,
// warning_flags and error_flags. Every description yields at least one
// tract, so no source row vanishes.
func ParseDescs(df dataframe.DataFrame, descCol string, opts Options) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, fmt.Errorf("bad frame: %w", df.Err)
	}
	if !HasColumn(df, descCol) {
		return df, fmt.Errorf("no column %q in frame", descCol)
	}

	src := df.Records()
	header := src[0]
	names := make([]string, 0, len(header)+len(descCols()))
	names = append(names, header...)
	for _, name := range descCols() {
		if contains(header, name) {
			name += opts.suffix()
		}
		names = append(names, name)
	}

	records := [][]string{names}
	cells := df.Col(descCol).Records()
	for i, cell := range cells {
		d := plss.ParseDescription(cell, opts.Config)
		d.Source = strconv.Itoa(i)
		for _, tr := range d.Tracts {
			row := make([]string, 0, len(names))
			row = append(row, src[i+1]...)
			row = append(row,
				d.Source,
				tr.TRS.String(),
				tr.TRS.Twp,
				tr.TRS.Rge,
				tr.TRS.Sec,
				tr.Desc,
				strings.Join(tr.Lots, ", "),
				strings.Join(tr.QQs, ", "),
				strings.Join(tr.WFlags, ", "),
				strings.Join(tr.EFlags, ", "),
			)
			records = append(records, row)
		}
	}

	if len(records) == 1 {
		return EmptyFrame(names), nil
	}
	out := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
	if out.Err != nil {
		return out, fmt.Errorf("exploding frame: %w", out.Err)
	}
	return out, nil
}

// FilterByTRS keeps (include=true) or drops (include=false) the rows
// whose descCol cell describes any of the sought TRS identifiers.
func FilterByTRS(df dataframe.DataFrame, descCol string, sought []string, include bool, cfg plss.Config) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, fmt.Errorf("bad frame: %w", df.Err)
	}
	if !HasColumn(df, descCol) {
		return df, fmt.Errorf("no column %q in frame", descCol)
	}

	cells := df.Col(descCol).Records()
	idx := make([]int, 0, len(cells))
	for i, cell := range cells {
		if ContainsTRS(cell, sought, cfg) == include {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return EmptyFrame(df.Names()), nil
	}
	out := df.Subset(idx)
	if out.Err != nil {
		return out, fmt.Errorf("subsetting frame: %w", out.Err)
	}
	return out, nil
}

// ContainsTRS parses raw as a land description and reports whether it
// describes any of the sought TRS identifiers. Comparison is exact on
// lowercased compiled strings.
func ContainsTRS(raw string, sought []string, cfg plss.Config) bool {
	return plss.ParseDescription(raw, cfg).ContainsTRS(sought...)
}

// HasColumn reports whether the frame has a column of that name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	return contains(df.Names(), name)
}

// EmptyFrame builds a zero-row, all-string frame with the given columns.
func EmptyFrame(names []string) dataframe.DataFrame {
	se := make([]series.Series, len(names))
	for i, n := range names {
		se[i] = series.New([]string{}, series.String, n)
	}
	return dataframe.New(se...)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
