// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/framex"
	"github.com/plssctl/plssctl/internal/source"
)

// Load fetches and decodes the dataset named by arg.
func Load(ctx context.Context, cmd *cli.Command, arg string) (dataframe.DataFrame, source.Ref, error) {
	ref := source.ParseRef(arg)

	data, err := source.Load(ctx, cmd, ref)
	if err != nil {
		return dataframe.DataFrame{}, ref, err
	}

	df, err := Decode(data, ref, cmd)
	return df, ref, err
}

// Decode turns a fetched payload into a dataframe. Every column loads as a
// string; land-record identifiers are text, and numeric coercion would
// corrupt zero-padded values.
func Decode(data []byte, ref source.Ref, cmd *cli.Command) (dataframe.DataFrame, error) {
	switch ref.Format {
	case source.FormatCSV:
		return decodeCSV(data)
	case source.FormatJSON:
		return decodeJSON(data, cmd.String("jpath"))
	case source.FormatXML:
		return decodeXML(data, cmd.String("xpath"))
	}

	return dataframe.DataFrame{}, fmt.Errorf("%s input is not tabular (only xt reads raw text)", ref.Format)
}

// FrameToJSON renders df's records as a JSON array.
func FrameToJSON(df dataframe.DataFrame) ([]byte, error) {
	var buf bytes.Buffer
	if err := df.WriteJSON(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode dataset: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeCSV(data []byte) (dataframe.DataFrame, error) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse csv: %w", err)
	}

	if len(records) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("empty csv document")
	}

	// A header-only document is an empty dataset, not an error.
	if len(records) == 1 {
		return framex.EmptyFrame(records[0]), nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to load csv records: %w", df.Err)
	}

	return df, nil
}

func decodeJSON(data []byte, jpath string) (dataframe.DataFrame, error) {
	if !gjson.ValidBytes(data) {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse json")
	}

	rows := gjson.ParseBytes(data)
	if jpath != "" {
		rows = rows.Get(jpath)
	}

	if !rows.IsArray() {
		if jpath != "" {
			return dataframe.DataFrame{}, fmt.Errorf("jpath %q did not yield a records array", jpath)
		}
		return dataframe.DataFrame{}, fmt.Errorf("json dataset is not a records array (use --jpath to point at one)")
	}

	// Column order is first-seen across rows.
	var cols []string
	seen := map[string]bool{}
	rowErr := error(nil)
	rows.ForEach(func(_, row gjson.Result) bool {
		if !row.IsObject() {
			rowErr = fmt.Errorf("json rows must be objects, got %s", row.Type)
			return false
		}
		row.ForEach(func(key, _ gjson.Result) bool {
			if k := key.String(); !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
			return true
		})
		return true
	})
	if rowErr != nil {
		return dataframe.DataFrame{}, rowErr
	}

	if len(cols) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("json dataset has no rows")
	}

	records := [][]string{cols}
	rows.ForEach(func(_, row gjson.Result) bool {
		vals := row.Map()
		rec := make([]string, len(cols))
		for i, c := range cols {
			if v, ok := vals[c]; ok && v.Type != gjson.Null {
				rec[i] = v.String()
			}
		}
		records = append(records, rec)
		return true
	})

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to load json records: %w", df.Err)
	}

	return df, nil
}

func decodeXML(data []byte, xpath string) (dataframe.DataFrame, error) {
	if xpath == "" {
		xpath = "//row"
	}

	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse xml: %w", err)
	}

	nodes, err := xmlquery.QueryAll(doc, xpath)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("bad xpath %q: %w", xpath, err)
	}

	if len(nodes) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("xpath %q matched no rows", xpath)
	}

	// Each matched node is a row; its child elements are the columns.
	var cols []string
	seen := map[string]bool{}
	rowMaps := make([]map[string]string, 0, len(nodes))
	for _, n := range nodes {
		vals := map[string]string{}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != xmlquery.ElementNode {
				continue
			}
			if !seen[child.Data] {
				seen[child.Data] = true
				cols = append(cols, child.Data)
			}
			vals[child.Data] = child.InnerText()
		}
		rowMaps = append(rowMaps, vals)
	}

	if len(cols) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("xpath %q rows have no child elements", xpath)
	}

	records := [][]string{cols}
	for _, vals := range rowMaps {
		rec := make([]string, len(cols))
		for i, c := range cols {
			rec[i] = vals[c]
		}
		records = append(records, rec)
	}

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to load xml records: %w", df.Err)
	}

	return df, nil
}
