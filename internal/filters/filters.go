// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/plssctl/plssctl/internal/attrs"
	"github.com/plssctl/plssctl/internal/config"
	"github.com/plssctl/plssctl/internal/driller"
	"github.com/plssctl/plssctl/plss"
)

// filterRegex is the pattern used to parse filter expressions into key,
// operator, and target components. It matches an optional leading underscore
// (indicating a pre-parse filter), followed by a key, and optionally an
// operator (with optional negation) and target. Operators are one of
// = ^ ~ < > @ or /, optionally prefixed with '!'. Examples:
// "county" (key only), "county=McKenzie" (key + operator + target),
// "county=" (key + operator, no target), "_county=McKenzie" (pre-parse key +
// operator + target).
var filterRegex = regexp.MustCompile(`^(_)?([^!?=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Filter is a single parsed --filter expression including the key, operand,
// optional negation, pre-parse flag and value to match against.
type Filter struct {
	Key      string `yaml:"key" json:"Key"`
	Negate   bool   `yaml:"negate" json:"Negate"`
	Operand  string `yaml:"operand" json:"Operand"`
	PreParse bool   `yaml:"preParse" json:"PreParse"`
	Value    string `yaml:"value" json:"Value"`
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Invalid specs (unsupported operand or malformed expression) are skipped.
func BuildFilters(spec string) []Filter {
	// Don't prealloc because we don't know what len will be and performance is
	// not critical.
	//nolint:prealloc
	var filters []Filter

	// If there are no filters specified, go home early.
	if spec == "" {
		return filters
	}

	// Default delimiter is ",", allow an override for situations where the value
	// contains commas.
	delim := ","
	if d, ok := os.LookupEnv("PLSSCTL_FILTER_DELIM"); ok {
		delim = d
	}

	// Split the spec and iterate over each filter spec entry.
	filterSpecs := strings.Split(spec, delim)
	for _, filterSpec := range filterSpecs {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(filterSpec)

		// Regex should always match, so check for nil just in case.
		if parts == nil {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		// parts[1] is the optional leading underscore (for pre-parse filters)
		// parts[2] is the key
		// parts[3] is the optional operator (may include negation like "!")
		// parts[4] is the optional target

		preParse := parts[1] == "_"
		key := strings.TrimSpace(parts[2])
		operand := parts[3]
		target := parts[4]

		// If key is empty, skip this filter.
		if key == "" {
			log.Error("invalid filter: empty key in " + filterSpec)
			continue
		}

		// Handle operator negation.
		negate := strings.HasPrefix(operand, "!")
		if negate {
			operand = strings.TrimPrefix(operand, "!")
		}

		// We've got a valid filter, append it to the result set.
		filters = append(filters, Filter{
			Key:      key,
			PreParse: preParse,
			Negate:   negate,
			Operand:  operand,
			Value:    target,
		})
	}

	return filters
}

// FilterDataset returns a result set filtered per the provided spec. It is the
// public entry point used by SliceDiceSpit. To be clear, this is the parsed
// record filtering. Any pre-parse filtering was applied against the raw input
// frame before the records got here.
func FilterDataset(candidates gjson.Result, attrs attrs.AttrList, spec string) []map[string]interface{} {
	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var filteredResults []map[string]interface{}

	// Build a slice of filters from the spec once so we can discard invalid
	// entries and avoid reparsing for each candidate row.
	filters := BuildFilters(spec)

	// Iterate over the candidate dataset, checking each against the filters.
	for _, candidate := range candidates.Array() {
		if !applyFilters(candidate, attrs, filters) {
			continue
		}

		// If the filter check was successful, add each attribute from the candidate
		// to the filtered result set.
		result := make(map[string]interface{})
		for i := range attrs {
			attr := attrs[i]
			// Intentionally defer Transform to SliceDiceSpit output phase.
			// This function is responsible for filtering only. Transformations
			// are applied downstream during output formatting.
			value := driller.Driller(candidate.Raw, attr.Key)
			result[attr.OutputKey] = value.Value()
		}
		filteredResults = append(filteredResults, result)
	}

	return filteredResults
}

// FilterRecords returns the indices of candidate rows matching every
// pre-parse filter. Keys name raw input columns directly; post-parse filters
// in the set are ignored here.
func FilterRecords(candidates gjson.Result, flts []Filter) []int {
	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var idx []int

	for i, candidate := range candidates.Array() {
		keep := true
		for _, filter := range flts {
			if !filter.PreParse {
				continue
			}

			value := driller.Driller(candidate.Raw, filter.Key).Value()
			if value == nil {
				keep = false
				break
			}

			result := true
			if v, ok := value.(string); ok {
				result = checkStringOperand(v, filter)
			} else if v, ok := value.(bool); ok {
				result = checkStringOperand(fmt.Sprintf("%v", v), filter)
			} else if num, ok := toFloat64(value); ok {
				result = checkNumericOperand(num, filter)
			} else if filter.Operand == "@" {
				result = checkContainsOperand(value, filter)
			}

			if !result {
				keep = false
				break
			}
		}

		if keep {
			idx = append(idx, i)
		}
	}

	return idx
}

// applyFilters returns true if the candidate row matches all of the
// provided filters. Pre-parse filter keys (prefixed with _) are ignored here.
func applyFilters(candidate gjson.Result, attrs attrs.AttrList,
	filters []Filter) bool {
	// No filters, so go home early.
	if len(filters) == 0 {
		return true
	}

	// Iterate over the filters, checking each against the candidate.
	for _, filter := range filters {
		var key string

		// Skip pre-parse filters as they were applied against the raw input
		// frame and we're not interested in them here.
		if filter.PreParse {
			continue
		}

		// Handle the special case of the plss filter. This filter checks if
		// the row's land description mentions the sought TRS (or, with no
		// target, any parseable TRS at all).
		if filter.Key == "plss" {
			plssResult := isPLSS(candidate, filter)
			return plssResult == plssPass
		}

		// Find the attribute that matches the filter key.
		for _, attr := range attrs {
			if attr.OutputKey == filter.Key {
				key = attr.Key
				break
			}
		}

		// If an attribute matching the filter key was not found, log the condition
		// and skip this filter (continue processing other filters).
		// This allows invalid filters to be reported without rejecting the entire row.
		if key == "" {
			msg := fmt.Sprintf("filter key not found: %s", filter.Key)
			log.Error(msg)
			fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
			continue
		}

		// Get the value from the candidate for the key. If it's nil, fail early.
		value := driller.Driller(candidate.Raw, key).Value()
		if value == nil {
			return false
		}

		// Check the value against the filter. If it fails the check, fail early as
		// there's no need to continue checking the remaining filters.
		result := true
		if v, ok := value.(string); ok {
			result = checkStringOperand(v, filter)
		} else if v, ok := value.(bool); ok {
			result = checkStringOperand(fmt.Sprintf("%v", v), filter)
		} else if num, ok := toFloat64(value); ok {
			result = checkNumericOperand(num, filter)
		} else if filter.Operand == "@" {
			result = checkContainsOperand(value, filter)
		}

		if !result {
			return false
		}
	}

	return true
}

// plssCheckType represents the outcome of the plss special filter.
type plssCheckType int

const (
	plssPass plssCheckType = iota
	plssFail
)

// checkContainsOperand evaluates a membership style filter (operand '@')
// against slice or map values.
func checkContainsOperand(value interface{}, filter Filter) bool {
	switch val := value.(type) {
	case []any:
		for _, item := range val {
			if item == filter.Value {
				return !filter.Negate
			}
		}
		return filter.Negate
	case map[string]any:
		_, found := val[filter.Value]
		if filter.Negate {
			return !found
		}
		return found
	default:
		log.Error(fmt.Sprintf("unsupported type for contains filtering: %T", value))
		return false
	}
}

// checkNumericOperand compares a numeric value against the filter value using
// numeric semantics. Supported operands: =, >, < and the negated form via
// filter.Negate (e.g., != is represented as Negate + "=").
func checkNumericOperand(value float64, filter Filter) bool {
	// Parse the value as a float64
	tgt, err := strconv.ParseFloat(strings.TrimSpace(filter.Value), 64)
	if err != nil {
		log.Error("invalid numeric value: " + filter.Value)
		return false
	}

	switch filter.Operand {
	case "=":
		return (value == tgt) == !filter.Negate
	case ">":
		return (value > tgt) == !filter.Negate
	case "<":
		return (value < tgt) == !filter.Negate
	default:
		log.Error("unsupported numeric operand: " + filter.Operand)
		return false
	}
}

// checkStringOperand evaluates a string comparison style filter against the
// provided value using the operand semantics.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Value == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Value) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Value) == !filter.Negate
	case ">":
		return value > filter.Value == !filter.Negate
	case "<":
		return value < filter.Value == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Value) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Value, value)
		if err != nil {
			log.Error("invalid regex: " + filter.Value)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Error("unsupported filtering operand: " + filter.Operand)
		return false
	}
}

// isPLSS checks to see if the current candidate passes or fails the plss
// test. The candidate's land-description column is parsed and, when the
// filter carries a target, checked for the sought TRS (whitespace-separated
// targets mean any-of). With no target, any parseable non-error TRS passes.
// The column consulted defaults to "desc" and may be overridden with the
// filters.plss_col config key.
func isPLSS(candidate gjson.Result, filter Filter) plssCheckType {
	col, _ := config.GetString("filters.plss_col", "desc")

	found := false
	if descVal, ok := driller.Driller(candidate.Raw, col).Value().(string); ok {
		d := plss.ParseDescription(descVal, plss.DefaultConfig())
		if sought := strings.Fields(filter.Value); len(sought) > 0 {
			found = d.ContainsTRS(sought...)
		} else {
			found = len(d.TRSList().WithoutErrors()) > 0
		}
	}

	// Apply negation if specified.
	if found == filter.Negate {
		return plssFail
	}

	return plssPass
}

// toFloat64 attempts to normalize various numeric types to float64.
// Returns (0, false) if v is not a recognized numeric type.
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
