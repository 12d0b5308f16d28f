// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/holidayctl/internal/cacheutil"
	"github.com/staranto/holidayctl/internal/provider"
	"github.com/staranto/holidayctl/internal/selector"
)

// NewFlags builds the flag set. cfgPath is the config file used as the
// lowest precedence value source; flags resolve CLI > env > config file.
func NewFlags(cfgPath string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "base-url",
			Usage:   "holiday provider base URL",
			Sources: chain(cfgPath, "baseUrl", "HOLIDAYCTL_BASE_URL"),
			Value:   provider.DefaultBaseURL,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:    "cache-file",
			Usage:   "path of the holiday cache file",
			Sources: chain(cfgPath, "cache.file", "HOLIDAYCTL_CACHE_FILE"),
			Value:   cacheutil.DefaultFile,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.IntFlag{
			Name:    "cache-max-age",
			Usage:   "hours before a cached year is fetched again, 0 keeps it forever",
			Sources: chain(cfgPath, "cache.maxAgeHours", "HOLIDAYCTL_CACHE_MAX_AGE"),
			Value:   0,
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: chain(cfgPath, "color", "HOLIDAYCTL_COLOR"),
			Value:   term.IsTerminal(int(os.Stdout.Fd())),
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of upcoming holidays to show, at most 5",
			Sources: chain(cfgPath, "count", "HOLIDAYCTL_COUNT"),
			Value:   selector.Window,
			Validator: func(value int) error {
				return FlagValidators(value, CountValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "no-cache",
			Usage:       "always ask the provider and leave the cache file alone",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: chain(cfgPath, "output", "HOLIDAYCTL_OUTPUT"),
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "policy",
			Aliases: []string{"p"},
			Usage:   "what to do when fewer holidays remain this year: fill from next year or truncate",
			Sources: chain(cfgPath, "policy", "HOLIDAYCTL_POLICY"),
			Value:   selector.FillName,
			Validator: func(value string) error {
				return FlagValidators(value, PolicyValidator)
			},
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "provider request timeout",
			Sources: chain(cfgPath, "timeout", "HOLIDAYCTL_TIMEOUT"),
			Value:   provider.DefaultTimeout,
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: chain(cfgPath, "titles", "HOLIDAYCTL_TITLES"),
			Value:   false,
		},
	}

	return
}

// chain returns the value sources for a flag: the env var first, then the
// key in the config file when there is one.
func chain(cfgPath, key, env string) cli.ValueSourceChain {
	c := cli.NewValueSourceChain(cli.EnvVar(env))
	if cfgPath != "" {
		c.Chain = append(c.Chain, yaml.YAML(key, altsrc.StringSourcer(cfgPath)))
	}
	return c
}
