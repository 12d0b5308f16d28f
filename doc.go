// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// holidayctl prints the next public holidays of a country. It wires the CLI,
// delegates to internal packages, and serves as the entry point.
package main
