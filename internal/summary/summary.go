// Package summary renders end-of-run statistics.
package summary

import (
	"crawlfilter/internal/models"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// NewTable returns a rounded table writer mirrored to w.
func NewTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// PathRows returns the statistics of a path collector run.
func PathRows(s models.RunStats) []table.Row {
	return []table.Row{
		{"Inputs", s.Inputs},
		{"Lines", s.Lines},
		{"Paths", s.Emitted},
		{"Rewritten", s.Rewritten},
	}
}

// LinkRows returns the statistics of a link filter run.
func LinkRows(s models.RunStats) []table.Row {
	return []table.Row{
		{"Inputs", s.Inputs},
		{"Lines", s.Lines},
		{"Rows", s.Emitted},
		{"Skipped (level)", s.Skipped},
		{"Suppressed (widgets)", s.Suppressed},
	}
}

// Render writes a titled statistics table to w and returns the rendered text.
func Render(w io.Writer, title string, rows []table.Row) string {
	t := NewTable(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Stat", "Count"})
	t.AppendRows(rows)
	return t.Render()
}
