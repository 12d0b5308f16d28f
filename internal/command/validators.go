// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/staranto/holidayctl/internal/output"
	"github.com/staranto/holidayctl/internal/selector"
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

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func OutputValidator(value any) error {
	return oneOf(value, output.Formats)
}

func PolicyValidator(value any) error {
	return oneOf(value, selector.Policies)
}

// CountValidator lets --count shrink the window but never grow it past
// selector.Window.
func CountValidator(value any) error {
	n, ok := value.(int)
	if !ok || n < 1 || n > selector.Window {
		return fmt.Errorf("must be between 1 and %d", selector.Window)
	}
	return nil
}

func oneOf(value any, valid []string) error {
	for _, v := range valid {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", valid)
}
