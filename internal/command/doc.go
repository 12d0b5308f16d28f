// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the holidayctl CLI. It wires flags, validators and
// the action that fetches, selects and prints upcoming holidays.
package command
