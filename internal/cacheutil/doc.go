// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cacheutil keeps the most recently fetched holiday year on disk so a
// repeat query for the same country and year skips the network.
package cacheutil
