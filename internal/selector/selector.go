// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selector

import (
	"context"

	"github.com/staranto/holidayctl/internal/holiday"
)

// Window is the number of holidays shown by default.
const Window = 5

// Selector computes the upcoming holiday window.
type Selector struct {
	Policy SelectionPolicy
	// Limit caps the window. Values <= 0 mean Window.
	Limit int
}

// New returns a Selector with policy and the default window.
func New(policy SelectionPolicy) *Selector {
	return &Selector{Policy: policy, Limit: Window}
}

// SelectUpcoming returns at most Limit holidays on or after today, in
// ascending date order, each one a record from current or from next year
// unchanged. next is only called when the policy needs it.
func (s *Selector) SelectUpcoming(ctx context.Context, today holiday.Date, current holiday.YearSet, next NextYearFunc) ([]holiday.Holiday, error) {
	limit := s.Limit
	if limit <= 0 {
		limit = Window
	}

	policy := s.Policy
	if policy == nil {
		policy = FillFromNextYear{}
	}

	remainder := make([]holiday.Holiday, 0, limit)
	for _, h := range current.Holidays {
		if h.Date.Before(today) {
			continue
		}
		remainder = append(remainder, h)
	}
	remainder = appendUnique(nil, remainder, limit)

	return policy.Complete(ctx, remainder, limit, next)
}

type dateName struct {
	date holiday.Date
	name string
}

// appendUnique appends from src onto dst, skipping (date, name) pairs that
// are already present, until dst holds limit entries.
func appendUnique(dst, src []holiday.Holiday, limit int) []holiday.Holiday {
	seen := make(map[dateName]struct{}, len(dst)+len(src))
	for _, h := range dst {
		seen[dateName{h.Date, h.Name}] = struct{}{}
	}

	out := make([]holiday.Holiday, len(dst), max(len(dst), limit))
	copy(out, dst)

	for _, h := range src {
		if len(out) >= limit {
			break
		}
		k := dateName{h.Date, h.Name}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, h)
	}
	return out
}
