// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = "# holidayctl - show holidays\n\n" +
	"## Short description\n\nPrint the next holidays\nof a country.\n\n" +
	"## Quick examples\n\n```\n# Germany\nholidayctl   DE\nholidayctl AT\n```\n"

func TestExtractTitleAndShortDesc(t *testing.T) {
	title, short := extractTitleAndShortDesc(page)
	assert.Equal(t, "holidayctl - show holidays", title)
	assert.Equal(t, "Print the next holidays of a country.", short)

	title, short = extractTitleAndShortDesc("# only a title\n")
	assert.Equal(t, "only a title", title)
	assert.Equal(t, "only a title.", short)
}

func TestExtractQuickExamples(t *testing.T) {
	exs := extractQuickExamples(page)
	assert.Equal(t, []example{
		{Desc: "Germany", Cmd: "holidayctl   DE"},
		{Desc: "Example", Cmd: "holidayctl AT"},
	}, exs)

	assert.Nil(t, extractQuickExamples("# nothing here"))
}

func TestBuildTLDR(t *testing.T) {
	got := buildTLDR("holidayctl", "t", "Print holidays.", []example{{Desc: "Germany", Cmd: "holidayctl   DE"}})
	assert.Equal(t, "# holidayctl\n\n> Print holidays.\n"+
		"> More information: https://github.com/staranto/holidayctl.\n\n"+
		"- Germany:\n\n`holidayctl DE`\n", got)

	assert.Contains(t, buildTLDR("holidayctl", "", "", nil), "`holidayctl --help`")
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	cmds := filepath.Join(root, "docs", "commands")
	require.NoError(t, os.MkdirAll(cmds, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cmds, "holidayctl.md"), []byte(page), 0o644))

	n, err := generate(root, true)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	man, err := os.ReadFile(filepath.Join(root, "docs", "man", "share", "man1", "holidayctl.1"))
	require.NoError(t, err)
	assert.NotEmpty(t, man)

	tldr, err := os.ReadFile(filepath.Join(root, "docs", "tldr", "holidayctl.md"))
	require.NoError(t, err)
	assert.Contains(t, string(tldr), "`holidayctl DE`")

	// Second run with unchanged input is a no-op.
	n, err = generate(root, true)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
