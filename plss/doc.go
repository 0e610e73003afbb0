// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package plss models United States Public Land Survey System (PLSS) land
// descriptions: Twp/Rge/Sec identifiers ("TRS"), individual tracts with
// lot and aliquot breakdowns, and full multi-tract descriptions.
//
// TRS identifiers follow the compiled lowercase convention used throughout
// the package: township number + n/s, range number + e/w, two-digit
// section, e.g. "154n97w14" or "8s22e01". Components that cannot be
// understood are represented by error placeholders (XXXz / XX) and
// components that were never set by undefined placeholders (___z / __),
// so a TRS is always renderable and bad data never panics.
//
// Parsing is tolerant: unrecognizable input produces error placeholders
// and flags rather than Go errors. Errors are reserved for programmer
// faults such as malformed configuration.
package plss
