package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	summaryGap      = 2
	summaryMinWidth = 30
	summaryBlank    = "—"
)

// SummaryRow is one labelled value of a finished record.
type SummaryRow struct {
	Key   string
	Value string
}

// SummaryBox lays out record rows as a key column and a value column
// inside a border. The key column is as wide as the widest key in cells,
// so full-width labels line up.
type SummaryBox struct {
	Rows []SummaryRow

	KeyStyle    lipgloss.Style
	ValueStyle  lipgloss.Style
	BorderStyle lipgloss.Style
}

// NewSummaryBox creates a summary box over rows.
func NewSummaryBox(rows []SummaryRow, keyStyle, valueStyle, borderStyle lipgloss.Style) SummaryBox {
	return SummaryBox{
		Rows:        rows,
		KeyStyle:    keyStyle,
		ValueStyle:  valueStyle,
		BorderStyle: borderStyle,
	}
}

// KeyWidth is the display width of the key column.
func (s SummaryBox) KeyWidth() int {
	w := 0
	for _, row := range s.Rows {
		w = max(w, lipgloss.Width(row.Key))
	}
	return w
}

// View renders the box to fit width, never narrower than summaryMinWidth.
// Empty values are shown as a dash.
func (s SummaryBox) View(width int) string {
	keyStyle := s.KeyStyle.Width(s.KeyWidth() + summaryGap)

	lines := make([]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		value := row.Value
		if strings.TrimSpace(value) == "" {
			value = summaryBlank
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			keyStyle.Render(row.Key),
			s.ValueStyle.Render(value),
		))
	}

	boxWidth := max(width-8, summaryMinWidth)
	return "  " + s.BorderStyle.Width(boxWidth).Render(strings.Join(lines, "\n"))
}
