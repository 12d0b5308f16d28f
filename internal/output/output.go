// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"

	"github.com/staranto/holidayctl/internal/config"
	"github.com/staranto/holidayctl/internal/holiday"
)

// Formats lists the accepted --output values, default first.
var Formats = []string{"text", "json", "yaml", "raw"}

// Options control rendering.
type Options struct {
	Format string
	Titles bool
	Color  bool
	// Today anchors the relative "when" column.
	Today holiday.Date
}

// Spit writes holidays to w in the requested format.
func Spit(w io.Writer, holidays []holiday.Holiday, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case "json":
		b, err := json.MarshalIndent(holidays, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(holidays)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "raw":
		for _, h := range holidays {
			if _, err := fmt.Fprintln(w, RawLine(h)); err != nil {
				return err
			}
		}
		return nil
	case "", "text":
		TableWriter(w, holidays, opts)
		return nil
	default:
		return fmt.Errorf("unknown output format %q, must be one of %v", opts.Format, Formats)
	}
}

// RawLine is the classic single-line form of a holiday.
func RawLine(h holiday.Holiday) string {
	return fmt.Sprintf("Date: %s, Name: %s, Counties: %s, Types: %s",
		h.Date, h.Name, Counties(h), strings.Join(h.Types, ", "))
}

// Counties lists the subdivisions a holiday applies to, or "National".
func Counties(h holiday.Holiday) string {
	if len(h.Counties) == 0 {
		return "National"
	}
	return strings.Join(h.Counties, ", ")
}

// When describes d relative to today at day granularity.
func When(d, today holiday.Date) string {
	switch days := int(d.Time().Sub(today.Time()).Hours() / 24); days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return humanize.RelTime(d.Time(), today.Time(), "ago", "from now")
	}
}

// TableWriter renders the holidays in a tabular form honoring color and
// titles options.
func TableWriter(w io.Writer, holidays []holiday.Holiday, opts Options) {
	if len(holidays) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 2)
	log.Debugf("padding: %v", pad)

	var rows [][]string
	for _, h := range holidays {
		rows = append(rows, []string{
			h.Date.String(),
			When(h.Date, opts.Today),
			h.Name,
			h.LocalName,
			Counties(h),
			strings.Join(h.Types, ","),
		})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("date", "when", "name", "localName", "counties", "types").BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}
