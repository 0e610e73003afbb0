// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller traverses JSON datasets to locate the record array or
// scalar a command should operate on. The --jpath flag and the di console's
// drill view are resolved through it.
package driller
