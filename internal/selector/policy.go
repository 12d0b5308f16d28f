// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selector

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/holidayctl/internal/holiday"
)

// NextYearFunc lazily fetches the following year's holidays.
type NextYearFunc func(ctx context.Context) (holiday.YearSet, error)

// SelectionPolicy decides what happens when fewer than limit holidays
// remain in the current year. remainder is already sorted, de-duplicated
// and no longer than limit.
type SelectionPolicy interface {
	Name() string
	Complete(ctx context.Context, remainder []holiday.Holiday, limit int, next NextYearFunc) ([]holiday.Holiday, error)
}

const (
	FillName     = "fill"
	TruncateName = "truncate"
)

// Policies lists the accepted policy names, default first.
var Policies = []string{FillName, TruncateName}

// ParsePolicy maps a policy name onto its strategy. Empty means the default.
func ParsePolicy(name string) (SelectionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FillName:
		return FillFromNextYear{}, nil
	case TruncateName:
		return TruncateOnly{}, nil
	default:
		return nil, fmt.Errorf("unknown selection policy %q, must be one of %v", name, Policies)
	}
}

// FillFromNextYear tops a short window up with the first holidays of the
// following year.
type FillFromNextYear struct{}

func (FillFromNextYear) Name() string { return FillName }

// Complete fetches next year only when the window is short. A next year the
// provider knows nothing about leaves the window short rather than failing.
func (FillFromNextYear) Complete(ctx context.Context, remainder []holiday.Holiday, limit int, next NextYearFunc) ([]holiday.Holiday, error) {
	if len(remainder) >= limit || next == nil {
		return remainder, nil
	}

	set, err := next(ctx)
	if errors.Is(err, holiday.ErrUnsupportedCountry) {
		log.WithError(err).Warn("no holidays for next year, window stays short")
		return remainder, nil
	}
	if err != nil {
		return nil, err
	}

	log.Debugf("filling %d of %d from %s", limit-len(remainder), limit, set.Key())
	return appendUnique(remainder, set.Holidays, limit), nil
}

// TruncateOnly never looks past the current year.
type TruncateOnly struct{}

func (TruncateOnly) Name() string { return TruncateName }

func (TruncateOnly) Complete(_ context.Context, remainder []holiday.Holiday, _ int, _ NextYearFunc) ([]holiday.Holiday, error) {
	return remainder, nil
}
