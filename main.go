// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/staranto/holidayctl/internal/command"
	"github.com/staranto/holidayctl/internal/holiday"
	mylog "github.com/staranto/holidayctl/internal/log"
	"github.com/staranto/holidayctl/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	mylog.InitLogger()

	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitCode(err)
	}

	return 0
}

// exitCode is 2 when the holidays could not be fetched or understood and 1
// when the invocation itself is wrong.
func exitCode(err error) int {
	for _, fetchErr := range []error{holiday.ErrNetwork, holiday.ErrParse, holiday.ErrUnsupportedCountry} {
		if errors.Is(err, fetchErr) {
			return 2
		}
	}
	return 1
}
