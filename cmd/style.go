package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jsphweid/motif/point"
	"github.com/jsphweid/motif/sequence"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555")).Padding(0, 1)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#444"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}

func cell(p point.Point, a point.Attribute) string {
	v, ok := p.Get(a)
	if !ok {
		return dimStyle.Render("-")
	}
	return fmt.Sprint(v)
}

// pointsTable lists offset, pitch, duration and velocity of every point.
func pointsTable(s *sequence.OSequence) string {
	attrs := []point.Attribute{point.Offset, point.Pitch, point.Duration, point.Velocity}
	headers := []string{"#"}
	for _, a := range attrs {
		headers = append(headers, a.String())
	}

	var rows [][]string
	for i, p := range s.Points() {
		row := []string{fmt.Sprint(i)}
		for _, a := range attrs {
			row = append(row, cell(p, a))
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows)
}
