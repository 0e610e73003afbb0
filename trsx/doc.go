// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package trsx extracts TRS identifiers from free text with user-supplied
// regular expressions. A Format pairs a pattern, whose named groups mark
// the township, range and section-list parts, with a splitter that breaks
// the section list apart. Three presets cover the common abbreviated
// notations; anything else can be supplied as a custom Format.
//
// Malformed patterns (missing named groups) are programmer faults and
// return errors. Text that simply does not match is a data condition and
// degrades to placeholder TRS values, matching package plss.
package trsx
