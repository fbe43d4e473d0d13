package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginTop(1)

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	faintStyle = lipgloss.NewStyle().Faint(true)
)

// header renders a section title.
func header(s string) string {
	return headerStyle.Render(s)
}

// newTable returns a table writer in the house style.
func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)

	return tbl
}
