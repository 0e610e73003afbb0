// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package framex applies the plss parsers across gota dataframes: parsing
// a tract or description column into appended columns, exploding
// multi-tract descriptions into one row per tract, and filtering rows by
// the TRS identifiers their descriptions contain.
//
// Frames are treated as all-string data. Appended columns whose names
// collide with existing ones get a configurable suffix instead of
// clobbering the originals.
package framex
