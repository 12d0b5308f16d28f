// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"
	"time"

	"github.com/staranto/holidayctl/internal/config"
)

// Meta are the meta-options that are available to the command action.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string
	// Now is the clock "today" is read from. Defaults to time.Now.
	Now func() time.Time
}

// Today returns the current time from m.Now, or time.Now if unset.
func (m Meta) Today() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}
