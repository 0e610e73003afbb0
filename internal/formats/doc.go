// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package formats resolves extraction format names for xt. Given a format
// name, it can find the matching preset or build one from user criteria. It
// can also compile ad hoc formats from a raw pattern and splitter name, as
// supplied by --rgx/--split or a formats.* config entry.
package formats
