// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"os"
	"sort"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/holidayctl/internal/config"
	"github.com/staranto/holidayctl/internal/meta"
	"github.com/staranto/holidayctl/internal/version"
)

// InitApp loads the config file and builds the root command.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	cfg, err := config.Load()
	if err != nil {
		log.Debugf("no config: %v", err)
	}

	return NewApp(meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
		Now:         time.Now,
	}), nil
}

// NewApp builds the root command around m.
func NewApp(m meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:      "holidayctl",
		Usage:     "show the next public holidays of a country",
		UsageText: "holidayctl [options] <country-code>",
		ArgsUsage: "<country-code>",
		Version:   version.Version,
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  NewFlags(m.Config.Source),
		Action: HolidaysAction,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
