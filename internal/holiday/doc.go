// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package holiday holds the public holiday data model shared by the source,
// selector and output packages, along with the error taxonomy used to report
// fetch failures.
package holiday
