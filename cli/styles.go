package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type styles struct {
	renderer *lipgloss.Renderer
	header   lipgloss.Style
	chord    lipgloss.Style
	dim      lipgloss.Style
	warning  lipgloss.Style
}

// newStyles binds styles to w so color is only emitted to terminals
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		renderer: r,
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7")),
		chord:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#9ece6a")),
		dim:      r.NewStyle().Foreground(lipgloss.Color("#555")),
		warning:  r.NewStyle().Foreground(lipgloss.Color("#e0af68")),
	}
}

// table renders rows under headers with a rounded border
func (s styles) table(headers []string, rows [][]string) string {
	headerStyle := s.header.Padding(0, 1)
	cellStyle := s.renderer.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.dim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
