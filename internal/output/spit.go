// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/plssctl/plssctl/framex"
	"github.com/plssctl/plssctl/internal/attrs"
	"github.com/plssctl/plssctl/internal/config"
	"github.com/plssctl/plssctl/internal/filters"
	"github.com/plssctl/plssctl/internal/log"
	"github.com/plssctl/plssctl/internal/meta"
	"github.com/plssctl/plssctl/internal/sink"
)

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	// Frame values are strings, so the other cases only show up for values
	// that a transform or a JSON drill produced.
	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		// Our current use cases have no need for an actual float, so we just return
		// an integer.
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// NewTag constructs a Tag from a raw struct tag value and an optional holder
// prefix used to build hierarchical attribute names.
func NewTag(h string, s string) schemaTag {
	allowed := []string{"attr"}

	tag := schemaTag{}

	parts := strings.Split(s, ",")
	if len(parts) > 0 {
		found := false
		for _, a := range allowed {
			if a == parts[0] {
				found = true
				break
			}
		}

		if !found {
			return tag
		}

		tag.Kind = parts[0]
	}

	if len(parts) > 1 {
		if h != "" {
			parts[1] = fmt.Sprintf("%s.%s", h, parts[1])
		}
		tag.Name = parts[1]
	}

	if len(parts) > 2 {
		tag.Encoding = parts[2]
	}

	return tag
}

// SliceDiceSpit orchestrates filtering, transforming, sorting and rendering
// of a result frame according to command flags and attribute specifications.
// Output is written to w. If w is nil, os.Stdout is used.
func SliceDiceSpit(df dataframe.DataFrame,
	attrs attrs.AttrList,
	cmd *cli.Command,
	w io.Writer) error {

	// Default to stdout.
	if w == nil {
		w = os.Stdout
	}

	// The frame is rendered to JSON once so that filtering, drilling and
	// sorting all work the gjson path machinery against one document shape.
	var raw bytes.Buffer
	if err := df.WriteJSON(&raw); err != nil {
		return fmt.Errorf("failed to encode result frame: %w", err)
	}

	fullDataset := gjson.ParseBytes(raw.Bytes())

	// Filter out the rows we don't want. Do it here so that the following
	// processes are slightly more efficient since they'll be working on a smaller
	// dataset.
	filter := cmd.String("filter")
	filteredDataset := filters.FilterDataset(fullDataset, attrs, filter)

	// Transform each value in each row.
	for _, row := range filteredDataset {
		for _, attr := range attrs {
			if attr.TransformSpec != "" {
				row[attr.OutputKey] = attr.Transform(row[attr.OutputKey])
			}
		}
	}

	spec := cmd.String("sort")
	SortDataset(filteredDataset, spec)

	var err error
	switch cmd.String("output") {
	case "csv":
		frame := resultFrame(filteredDataset, attrs)
		if frame.Error() != nil {
			err = fmt.Errorf("failed to rebuild output frame: %w", frame.Error())
			break
		}
		err = frame.WriteCSV(w)
	case "json":
		// TODO WriteJSON marshals row maps, so keys come out alphabetical
		// rather than in attr order.
		frame := resultFrame(filteredDataset, attrs)
		if frame.Error() != nil {
			err = fmt.Errorf("failed to rebuild output frame: %w", frame.Error())
			break
		}
		err = frame.WriteJSON(w)
	case "yaml":
		var yamlOutput []byte
		yamlOutput, err = yaml.Marshal(filteredDataset)
		if err != nil {
			err = fmt.Errorf("failed to marshal yaml output: %w", err)
			break
		}
		_, err = w.Write(yamlOutput)
	default:
		TableWriter(filteredDataset, attrs, cmd, w)
	}
	if err != nil {
		return err
	}

	if spec := cmd.String("save"); spec != "" {
		cols, rows := Records(filteredDataset, attrs)
		if err := sink.Save(spec, cmd.Name, cols, rows); err != nil {
			return err
		}
	}

	summarize(cmd, len(filteredDataset))

	return nil
}

// Records flattens the result set into an ordered header and string rows,
// following the attribute list's output order. Only included attributes
// contribute columns.
func Records(resultSet []map[string]interface{}, attrs attrs.AttrList) ([]string, [][]string) {
	var cols []string
	for _, attr := range attrs {
		if attr.Include {
			cols = append(cols, attr.OutputKey)
		}
	}

	rows := make([][]string, 0, len(resultSet))
	for _, result := range resultSet {
		row := make([]string, 0, len(cols))
		for _, attr := range attrs {
			if !attr.Include {
				continue
			}
			row = append(row, InterfaceToString(result[attr.OutputKey]))
		}
		rows = append(rows, row)
	}

	return cols, rows
}

// resultFrame rebuilds a string-typed frame from the filtered result set.
// Row maps lose column ordering, so the frame is loaded from records rather
// than LoadMaps.
func resultFrame(resultSet []map[string]interface{}, attrs attrs.AttrList) dataframe.DataFrame {
	cols, rows := Records(resultSet, attrs)

	if len(rows) == 0 {
		return framex.EmptyFrame(cols)
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, cols)
	records = append(records, rows...)

	return dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
}

// summarize logs the rendered row count, and the elapsed wall time when the
// command carries a start timestamp.
func summarize(cmd *cli.Command, rows int) {
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok && !m.Started.IsZero() {
		log.Debugf("%s rows in %s", humanize.Comma(int64(rows)), time.Since(m.Started).Round(time.Millisecond))
		return
	}

	log.Debugf("%s rows", humanize.Comma(int64(rows)))
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options. Output is written to w. If w is nil, os.Stdout
// is used.
func TableWriter(
	resultSet []map[string]interface{},
	attrs attrs.AttrList,
	cmd *cli.Command,
	w io.Writer) {

	if w == nil {
		w = os.Stdout
	}

	// We return early if there are no results to display.
	if len(resultSet) == 0 {
		return
	}

	// We initialize the table styles.
	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	// And then color styles if --color is present.
	if cmd.Bool("color") {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	// We build the table rows from the result set.
	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(result))
		for _, attr := range attrs {
			if !attr.Include {
				continue
			}
			row = append(row, InterfaceToString(result[attr.OutputKey], "-"))
		}
		rows = append(rows, row)
	}

	// We render the header if present.
	if cmd.Metadata["header"] != nil {
		fmt.Fprintln(w, headerStyle.Render(cmd.Metadata["header"].(string)))
	}

	// We configure the table with padding and styles.
	pad := cmd.Int("padding")
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	// We add column headers if titles are enabled.
	if cmd.Bool("titles") {
		var headers []string
		for _, attr := range attrs {
			if attr.Include {
				headers = append(headers, attr.OutputKey)
			}
		}

		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)

	// We render the footer if present.
	if cmd.Metadata["footer"] != nil {
		fmt.Fprintln(w, headerStyle.Render(cmd.Metadata["footer"].(string)))
	}
}

// getColors returns configured color values for table rendering. Each color is
// selected based on terminal background color and brightness so that we can
// make sure output is reasonably visible for all(?) terminal themes.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// Use the explicit color if found in the config and leave it up to the user
	// to choose appropriate colors for their theme. If not found, pick a
	// reasonable default based on terminal background.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
