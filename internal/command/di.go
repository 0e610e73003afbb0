// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	gocache "github.com/patrickmn/go-cache"

	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/internal/config"
	"github.com/plssctl/plssctl/internal/log"
	"github.com/plssctl/plssctl/internal/meta"
	"github.com/plssctl/plssctl/plss"
)

func diCommandAction(ctx context.Context, cmd *cli.Command) error {
	// diCommandAction is the action handler for the "di" subcommand. It
	// loads the dataset's land-description column and launches an
	// interactive inspector to query it row by row.
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "di"

	if ShortCircuitTLDR(ctx, cmd, "di") {
		return nil
	}

	df, _, err := LoadDatasetArg(ctx, cmd, 0)
	if err != nil {
		return err
	}

	col, err := ResolveTextColumn(df, cmd)
	if err != nil {
		return err
	}

	cfg, err := ParseOptions(cmd)
	if err != nil {
		return err
	}

	ds := &diDataset{
		col:   col,
		rows:  df.Col(col).Records(),
		cfg:   cfg,
		cache: gocache.New(gocache.NoExpiration, 0),
	}

	// Run interactive console
	return runDiInteractiveConsole(ds)
}

// diDataset is the queryable state behind the console: the description
// cells of one column plus a parse cache keyed by row index, so repeated
// queries do not re-parse the whole column.
type diDataset struct {
	col   string
	rows  []string
	cfg   plss.Config
	cache *gocache.Cache
}

// describe parses row i, memoized.
func (ds *diDataset) describe(i int) *plss.Description {
	key := strconv.Itoa(i)
	if hit, ok := ds.cache.Get(key); ok {
		return hit.(*plss.Description)
	}
	d := plss.ParseDescription(ds.rows[i], ds.cfg)
	ds.cache.Set(key, d, gocache.DefaultExpiration)
	return d
}

// diModel represents the Bubble Tea model for di command
type diModel struct {
	input          textinput.Model
	history        []string // Full history for navigation (includes file history)
	sessionHistory []string // Only commands from this session (matches with outputs)
	histIndex      int
	output         []string
	ds             *diDataset
}

func initialDiModel(ds *diDataset) diModel {
	ti := textinput.New()
	ti.Placeholder = ""
	ti.Focus()
	ti.CharLimit = 2048
	ti.Width = 999
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorBlink) // Set to blinking vertical line

	// Load history from file
	history := loadDiHistory(getDiHistoryFile())

	// Add initial welcome message
	var output []string
	output = append(output, fmt.Sprintf("Description inspector loaded. %d rows from %q.", len(ds.rows), ds.col))
	output = append(output, "Type 'help' for syntax, 'exit' or Ctrl+C to quit.")

	return diModel{
		input:          ti,
		history:        history,
		sessionHistory: []string{}, // Empty for new session
		histIndex:      -1,
		output:         output,
		ds:             ds,
	}
}

func (m diModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m diModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			entry := m.input.Value()
			if strings.TrimSpace(entry) != "" {
				// Handle special commands
				if entry == "exit" || entry == "quit" {
					return m, tea.Quit
				}
				if entry == "help" {
					m.history = append(m.history, entry)
					m.sessionHistory = append(m.sessionHistory, entry)
					m.histIndex = -1
					m.output = append(m.output, getDiHelp())
					saveDiHistory(getDiHistoryFile(), m.history)
					m.input.SetValue("")
					return m, nil
				}

				// Process query and get output
				result := processDiQuery(m.ds, entry)

				m.history = append(m.history, entry)
				m.sessionHistory = append(m.sessionHistory, entry)
				m.histIndex = -1
				m.output = append(m.output, result)
				saveDiHistory(getDiHistoryFile(), m.history)
			}
			m.input.SetValue("")
			return m, nil

		case "up":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex == -1 {
				m.histIndex = len(m.history) - 1
			} else if m.histIndex > 0 {
				m.histIndex--
			}
			m.input.SetValue(m.history[m.histIndex])
			m.input.CursorEnd()
			return m, nil

		case "down":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex >= 0 && m.histIndex < len(m.history)-1 {
				m.histIndex++
				m.input.SetValue(m.history[m.histIndex])
				m.input.CursorEnd()
			} else {
				m.histIndex = -1
				m.input.SetValue("")
			}
			return m, nil

		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m diModel) View() string {
	// Surveyor green style for the prompt
	promptStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#2E8B57"))

	var lines []string

	// Add the initial welcome messages first
	if len(m.output) >= 2 {
		lines = append(lines, m.output[0])
		lines = append(lines, m.output[1])
	}

	// Add each command from THIS SESSION with its corresponding output
	for i := 0; i < len(m.sessionHistory); i++ {
		// Show the command that was entered in this session
		lines = append(lines, promptStyle.Render("> ")+m.sessionHistory[i])

		// Show the corresponding output (accounting for the 2 initial messages)
		if (i + 2) < len(m.output) {
			lines = append(lines, m.output[i+2])
		}
	}

	// Add current prompt and input
	lines = append(lines, promptStyle.Render("> ")+m.input.View())

	return strings.Join(lines, "\n")
}

// getDiHelp returns the help text as a string
func getDiHelp() string {
	return `Query syntax:
  Three query modes supported:

  1. TRS lookup (a compiled identifier)
     154n97w14                        - Rows describing sec 14 of 154n97w
     1s5e1                            - Loose components normalize first

  2. Township/range lookup (no section)
     154n97w                          - Rows describing any sec of 154n97w

  3. Ad hoc parse (queries starting with '?')
     ?NE/4 of Sec 14, T154N-R97W      - Parse the text and show its tracts

  Navigation:
     ↑/↓ arrows                       - Navigate command history
     Ctrl+C                           - Exit

  Examples:
     154n97w14                        - Every row touching that section
     ?Lots 1 - 3, S/2NE/4 Sec 1      - One-off parse of pasted text`
}

// getDiHistoryFile returns the path to the di history file
func getDiHistoryFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".plssctl_di_history"
	}
	return filepath.Join(homeDir, ".plssctl_di_history")
}

func loadDiHistory(filename string) []string {
	var history []string

	file, err := os.Open(filename)
	if err != nil {
		return history // Return empty history if file doesn't exist
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			history = append(history, line)
		}
	}

	return history
}

// processDiQuery classifies the query and renders its answer. A '?' prefix
// parses the rest as ad hoc description text; a compiled TRS or bare twprge
// searches the dataset rows; anything else is a syntax nudge.
func processDiQuery(ds *diDataset, query string) string {
	query = strings.TrimSpace(query)

	if strings.HasPrefix(query, "?") {
		return renderAdHoc(ds, strings.TrimSpace(strings.TrimPrefix(query, "?")))
	}

	trs := plss.ParseTRS(query)
	switch {
	case trs.IsError():
		return fmt.Sprintf("Unrecognized query %q. Type 'help' for syntax.", query)
	case trs.Sec == plss.UndefSec:
		return searchRows(ds, func(d *plss.Description) bool {
			for _, t := range d.Tracts {
				if t.TRS.TwpRge() == trs.TwpRge() {
					return true
				}
			}
			return false
		})
	default:
		want := trs.String()
		return searchRows(ds, func(d *plss.Description) bool {
			return d.ContainsTRS(want)
		})
	}
}

// searchRows renders every row whose parsed description satisfies match,
// prefixed with its 0-based row index.
func searchRows(ds *diDataset, match func(*plss.Description) bool) string {
	var b strings.Builder
	n := 0
	for i := range ds.rows {
		if match(ds.describe(i)) {
			fmt.Fprintf(&b, "%d: %s\n", i, ds.rows[i])
			n++
		}
	}
	if n == 0 {
		return "No matching rows."
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderAdHoc parses free text and renders the tract breakdown.
func renderAdHoc(ds *diDataset, text string) string {
	if text == "" {
		return "Nothing to parse."
	}

	d := plss.ParseDescription(text, ds.cfg)

	var b strings.Builder
	fmt.Fprintf(&b, "layout: %s\n", d.Layout)
	for _, t := range d.Tracts {
		fmt.Fprintf(&b, "%s", t.TRS)
		if t.Desc != "" {
			fmt.Fprintf(&b, "  %s", t.Desc)
		}
		if len(t.Lots) > 0 {
			fmt.Fprintf(&b, "  lots=%s", strings.Join(t.Lots, ","))
		}
		if len(t.QQs) > 0 {
			fmt.Fprintf(&b, "  qqs=%s", strings.Join(t.QQs, ","))
		}
		if len(t.WFlags) > 0 {
			fmt.Fprintf(&b, "  warn=%s", strings.Join(t.WFlags, ","))
		}
		if len(t.EFlags) > 0 {
			fmt.Fprintf(&b, "  err=%s", strings.Join(t.EFlags, ","))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func runDiInteractiveConsole(ds *diDataset) error {
	p := tea.NewProgram(initialDiModel(ds))
	_, err := p.Run()
	return err
}

func saveDiHistory(filename string, history []string) {
	// Keep only the last 1000 commands
	maxHistory := 1000
	start := 0
	if len(history) > maxHistory {
		start = len(history) - maxHistory
	}

	file, err := os.Create(filename)
	if err != nil {
		return // Silently fail if we can't save history
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for i := start; i < len(history); i++ {
		fmt.Fprintln(writer, history[i])
	}
	writer.Flush()
}

// diCommandBuilder constructs the cli.Command for "di" and wires up metadata,
// flags, and the action handler.
func diCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "di",
		Usage:     "description inspector",
		UsageText: "plssctl di <input> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append(append([]cli.Flag{
			tldrFlag,
			NewColFlag("di", meta.Config.Source),
		}, NewInputFlags("di", meta.Config.Source)...),
			NewGlobalFlags("di", meta.Config.Source)...),
		Action: diCommandAction,
	}
}
