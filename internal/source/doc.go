// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package source resolves a country's holidays for a year, preferring the
// on-disk cache and falling back to the remote provider.
package source
