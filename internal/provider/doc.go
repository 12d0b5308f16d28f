// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package provider talks to the remote public holiday service (Nager.Date)
// and turns its responses into holiday.YearSet values or classified errors.
package provider
