// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/urfave/cli/v3"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/plssctl/plssctl/internal/log"
)

// Diff compares two parsed record frames and writes a colored delta to w.
// Row order matters: records are matched positionally within the rows
// array. If w is nil, os.Stdout is used.
func Diff(cmd *cli.Command, left, right dataframe.DataFrame, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	drop := dropKeys(cmd.String("diff-filter"))

	leftDoc, err := wrapRows(left, drop)
	if err != nil {
		return err
	}

	rightDoc, err := wrapRows(right, drop)
	if err != nil {
		return err
	}

	log.Debugf("len(docs): %d %d", len(leftDoc), len(rightDoc))

	differ := gojsondiff.New()

	delta, err := differ.Compare(leftDoc, rightDoc)
	if err != nil {
		return fmt.Errorf("failed to compare datasets: %w", err)
	}

	if !delta.Modified() {
		fmt.Fprintln(w, "The datasets are identical.")
		return nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(leftDoc, &jdoc); err != nil {
		return fmt.Errorf("failed to unmarshal dataset: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       true,
	}

	formatter := formatter.NewAsciiFormatter(jdoc, config)
	diffString, err := formatter.Format(delta)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, diffString)

	return nil
}

// wrapRows renders a frame as {"rows": [...]} with the dropped keys removed
// from every row. gojsondiff compares objects, not arrays, so the wrapper
// gives both sides a common root.
func wrapRows(df dataframe.DataFrame, drop []string) ([]byte, error) {
	if df.Error() != nil {
		return nil, df.Error()
	}

	rows := df.Maps()
	for _, row := range rows {
		for _, key := range drop {
			delete(row, key)
		}
	}

	doc, err := json.Marshal(map[string]interface{}{"rows": rows})
	if err != nil {
		return nil, fmt.Errorf("failed to encode dataset rows: %w", err)
	}

	return doc, nil
}

// dropKeys splits a --diff-filter spec into the row keys to discard before
// comparison.
func dropKeys(spec string) []string {
	//nolint:prealloc
	var keys []string

	for _, key := range strings.Split(spec, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}

	return keys
}
