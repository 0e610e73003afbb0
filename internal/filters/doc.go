// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters provides filtering capabilities for dataset records.
//
// The package parses filter expressions to select subsets of records based on
// column values. Filters are specified as key-operator-target expressions and
// can be combined using a configurable delimiter (default: comma, overridable
// with PLSSCTL_FILTER_DELIM).
//
// Operators include:
//
//   - = : exact match (supports negation with !=)
//   - ^ : prefix match (supports negation with !^)
//   - ~ : case-insensitive match (supports negation with !~)
//   - < : less than (numeric or lexical comparison)
//   - > : greater than (numeric or lexical comparison)
//   - @ : contains substring or member (supports negation with !@)
//   - / : regex match (supports negation with !/)
//
// Examples:
//
//   - "county=McKenzie" : matches records where county equals "McKenzie"
//   - "trs^154n" : matches records where trs starts with "154n"
//   - "acres>40" : matches records where acres is greater than 40
//   - "desc!@Lot" : matches records where desc does not contain "Lot"
//
// Filter Keys and Attributes:
//
// Filter keys are matched against the OutputKey of attributes (see attrs
// package). Keys prefixed with underscore (_) are pre-parse filters: they are
// applied against the raw input frame before any PLSS parsing happens and are
// ignored during record filtering.
//
// The special key "plss" filters on land-description content: "plss=154n97w14"
// keeps records whose description mentions that TRS, and a bare "plss" keeps
// records whose description parses to at least one non-error TRS. The column
// consulted defaults to "desc" (filters.plss_col config key).
//
// Filter Parsing:
//
// The BuildFilters function parses a comma-delimited (or custom-delimited)
// filter specification string. Invalid specifications (unsupported operands or
// malformed expressions) are logged as warnings and skipped, allowing partial
// filter sets to be processed.
//
// Filter Application:
//
// The FilterDataset function filters a list of candidate records, keeping only
// those that match all provided filter expressions. Attributes specified in
// the attrs parameter are used to determine which fields from the record are
// included in the filtered result. FilterRecords applies the pre-parse subset
// against raw rows and returns the surviving indices.
package filters
