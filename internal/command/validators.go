// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/plss"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "csv", "json", "yaml"}
	valid := false
	for _, v := range validOutputFlagValues {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

// LayoutValidator accepts the empty string (deduce per description) or one
// of the recognized layout names in any case.
func LayoutValidator(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	for _, l := range plss.Layouts() {
		if strings.EqualFold(s, l) {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", plss.Layouts())
}

// SplitValidator accepts the empty string or a splitter name.
func SplitValidator(value any) error {
	switch value {
	case "", "comma", "dash", "space":
		return nil
	}
	return fmt.Errorf("must be one of [comma dash space]")
}

// NSValidator accepts the empty string, n or s.
func NSValidator(value any) error {
	s, _ := value.(string)
	switch strings.ToLower(s) {
	case "", "n", "s":
		return nil
	}
	return fmt.Errorf("must be n or s")
}

// EWValidator accepts the empty string, e or w.
func EWValidator(value any) error {
	s, _ := value.(string)
	switch strings.ToLower(s) {
	case "", "e", "w":
		return nil
	}
	return fmt.Errorf("must be e or w")
}
