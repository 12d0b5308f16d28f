// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package selector picks the window of upcoming holidays to display. How a
// short window near the end of the year is handled is a SelectionPolicy.
package selector
