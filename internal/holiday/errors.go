// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package holiday

import "errors"

var (
	// ErrNetwork means the provider request could not be completed.
	// Connectivity, timeouts and non-2xx statuses all land here.
	ErrNetwork = errors.New("network error")
	// ErrParse means the provider body did not decode into a holiday list.
	ErrParse = errors.New("parse error")
	// ErrUnsupportedCountry means the provider had no data for the code.
	ErrUnsupportedCountry = errors.New("unsupported country")
	// ErrCache is never fatal. Reads degrade to a miss, writes are skipped.
	ErrCache = errors.New("cache error")

	ErrInvalidCountryCode = errors.New("country code must be two letters")
)
