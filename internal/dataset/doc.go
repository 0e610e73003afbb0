// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package dataset decodes fetched documents into dataframes. CSV columns
// come straight from the header, JSON wants a records array (or --jpath
// pointing at one), and XML turns each --xpath match into a row with its
// child elements as columns.
package dataset
