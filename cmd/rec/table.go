package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// renderTable renders rows with rounded borders on a terminal and a
// plain pipe-separated layout when piped.
func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	if stdoutIsTerminal() {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
		text.DisableColors()
	}

	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}

// Colored output helpers; no-ops when stdout is not a terminal.

func successText(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return text.FgGreen.Sprint(s)
}

func warnText(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return text.FgYellow.Sprint(s)
}

func dimText(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return text.Faint.Sprint(s)
}

func boldText(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return text.Bold.Sprint(s)
}
