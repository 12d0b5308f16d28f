// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders a holiday window as a text table, JSON, YAML or the
// one-line-per-holiday raw form.
package output
