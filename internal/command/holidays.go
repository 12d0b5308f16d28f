// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/holidayctl/internal/cacheutil"
	"github.com/staranto/holidayctl/internal/holiday"
	"github.com/staranto/holidayctl/internal/output"
	"github.com/staranto/holidayctl/internal/provider"
	"github.com/staranto/holidayctl/internal/selector"
	"github.com/staranto/holidayctl/internal/source"
)

// ErrUsage is returned when the positional arguments are wrong.
var ErrUsage = errors.New("exactly one country code argument is required")

// HolidaysAction is the action handler for the root command. It resolves the
// country's holidays for this year, asks the selection policy for the window
// (fetching next year if the policy wants it) and prints the result.
func HolidaysAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	if cmd.NArg() != 1 {
		return fmt.Errorf("%w, e.g. %s DE", ErrUsage, cmd.Name)
	}

	countryCode, err := holiday.NormalizeCountryCode(cmd.Args().First())
	if err != nil {
		return err
	}

	policy, err := selector.ParsePolicy(cmd.String("policy"))
	if err != nil {
		return err
	}
	log.Debugf("policy: %s", policy.Name())

	src := NewSource(cmd)
	today := holiday.DateOf(m.Today())

	current, err := src.Fetch(ctx, countryCode, today.Year)
	if err != nil {
		return err
	}

	sel := &selector.Selector{Policy: policy, Limit: int(cmd.Int("count"))}
	next := func(ctx context.Context) (holiday.YearSet, error) {
		return src.Fetch(ctx, countryCode, today.Year+1)
	}

	window, err := sel.SelectUpcoming(ctx, today, current, next)
	if err != nil {
		return err
	}
	if len(window) == 0 {
		log.Warnf("no upcoming holidays for %s", countryCode)
	}

	return output.Spit(cmd.Root().Writer, window, output.Options{
		Format: cmd.String("output"),
		Titles: cmd.Bool("titles"),
		Color:  cmd.Bool("color"),
		Today:  today,
	})
}

// NewSource wires the provider client and, unless --no-cache, the cache file
// into a source.Source.
func NewSource(cmd *cli.Command) *source.Source {
	remote := provider.New(cmd.String("base-url"), cmd.Duration("timeout"))

	// A nil *cacheutil.Cache must not end up in the interface.
	var store source.Store
	if !cmd.Bool("no-cache") {
		store = cacheutil.New(cmd.String("cache-file"))
	}

	return source.New(remote, store, int(cmd.Int("cache-max-age")))
}
