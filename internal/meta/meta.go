// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"time"

	"github.com/plssctl/plssctl/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries the CLI
// arguments, loaded configuration, context, and the moment the run began
// (used for the elapsed-time summary).
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	Started time.Time
}
