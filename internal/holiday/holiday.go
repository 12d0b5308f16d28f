// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package holiday

import (
	"fmt"
	"strings"
)

// Holiday is a single public holiday as delivered by the provider. The
// optional fields are carried through untouched; nothing in this module
// interprets them beyond rendering.
type Holiday struct {
	Date        Date     `json:"date" yaml:"date"`
	LocalName   string   `json:"localName" yaml:"localName"`
	Name        string   `json:"name" yaml:"name"`
	CountryCode string   `json:"countryCode" yaml:"countryCode"`
	Fixed       *bool    `json:"fixed,omitempty" yaml:"fixed,omitempty"`
	Global      *bool    `json:"global,omitempty" yaml:"global,omitempty"`
	Counties    []string `json:"counties" yaml:"counties,omitempty"`
	LaunchYear  *int     `json:"launchYear,omitempty" yaml:"launchYear,omitempty"`
	Types       []string `json:"types" yaml:"types,omitempty"`
}

// YearSet is every holiday of one country for one year, in the order the
// provider returned them (ascending by date).
type YearSet struct {
	CountryCode string    `json:"countryCode"`
	Year        int       `json:"year"`
	Holidays    []Holiday `json:"holidays"`
}

// Key identifies the set in the cache file.
func (s YearSet) Key() string {
	return Key(s.CountryCode, s.Year)
}

// Key builds the cache key for a country and year, e.g. "DE/2025".
func Key(countryCode string, year int) string {
	return fmt.Sprintf("%s/%d", countryCode, year)
}

// NormalizeCountryCode trims and upper-cases s and verifies it is made of two
// ASCII letters. Whether the provider actually knows the code is only
// discovered by asking it.
func NormalizeCountryCode(s string) (string, error) {
	cc := strings.ToUpper(strings.TrimSpace(s))
	if len(cc) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCountryCode, s)
	}
	for _, r := range cc {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidCountryCode, s)
		}
	}
	return cc, nil
}
