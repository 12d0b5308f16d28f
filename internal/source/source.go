// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"

	"github.com/apex/log"

	"github.com/staranto/holidayctl/internal/cacheutil"
	"github.com/staranto/holidayctl/internal/holiday"
)

// Fetcher retrieves a year of holidays from the remote provider.
type Fetcher interface {
	PublicHolidays(ctx context.Context, countryCode string, year int) (holiday.YearSet, error)
}

// Store is the best-effort cache in front of a Fetcher.
type Store interface {
	Read(key string) (*cacheutil.Entry, bool)
	Write(set holiday.YearSet) error
	Purge(hours int) error
}

// Source is the cache-then-network holiday lookup.
type Source struct {
	Remote Fetcher
	// Cache may be nil, in which case every Fetch goes to Remote.
	Cache Store
	// MaxAgeHours purges a cache file older than this before reading it.
	// Zero keeps entries forever.
	MaxAgeHours int
}

// New returns a Source reading through cache to remote.
func New(remote Fetcher, cache Store, maxAgeHours int) *Source {
	return &Source{Remote: remote, Cache: cache, MaxAgeHours: maxAgeHours}
}

// Fetch returns every holiday of countryCode in year. A cache hit never
// touches the network. A miss fetches, persists the result and returns it.
// Cache problems are logged and otherwise ignored; provider errors are
// returned as is.
func (s *Source) Fetch(ctx context.Context, countryCode string, year int) (holiday.YearSet, error) {
	key := holiday.Key(countryCode, year)

	if s.Cache != nil {
		if err := s.Cache.Purge(s.MaxAgeHours); err != nil {
			log.WithError(err).Warn("failed to purge cache")
		}

		if entry, ok := s.Cache.Read(key); ok {
			log.Infof("using cached data for %s (fetched %s)", key, entry.Fetched)
			return entry.YearSet, nil
		}
	}

	set, err := s.Remote.PublicHolidays(ctx, countryCode, year)
	if err != nil {
		return holiday.YearSet{}, err
	}

	if s.Cache != nil {
		if err := s.Cache.Write(set); err != nil {
			log.WithError(err).Warnf("failed to write %s to cache", key)
		} else {
			log.Infof("cache updated for %s", key)
		}
	}

	return set, nil
}
