package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SingleSelectItem represents an option in a single-select list.
type SingleSelectItem struct {
	Label string
	Value string
}

// SingleSelect is a navigable radio-button list. The cursor and the
// selection are separate: moving never selects.
type SingleSelect struct {
	Items    []SingleSelectItem
	cursor   int
	selected int

	// Styles
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
	AccentColor    lipgloss.Color
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	DimColor       lipgloss.Color
}

// NewSingleSelect creates a new single-select component with nothing selected.
func NewSingleSelect(items []SingleSelectItem, accentColor, primaryColor, secondaryColor, dimColor, borderColor, activeBorderColor lipgloss.Color) SingleSelect {
	return SingleSelect{
		Items:          items,
		selected:       -1,
		AccentColor:    accentColor,
		PrimaryColor:   primaryColor,
		SecondaryColor: secondaryColor,
		DimColor:       dimColor,
		ActiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(activeBorderColor).
			Padding(0, 1),
		InactiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1),
	}
}

// Update moves the cursor on up/down and selects the cursor item on
// space or enter. It reports whether the selection changed.
func (s SingleSelect) Update(msg tea.Msg) (SingleSelect, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, false
	}
	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.Items)-1 {
			s.cursor++
		}
	case " ", "space", "enter":
		if len(s.Items) == 0 {
			return s, false
		}
		changed := s.selected != s.cursor
		s.selected = s.cursor
		return s, changed
	}
	return s, false
}

// Select marks the item whose value is v and moves the cursor to it.
// Values outside the list clear the selection.
func (s *SingleSelect) Select(v string) {
	s.selected = -1
	for i, item := range s.Items {
		if item.Value == v {
			s.selected = i
			s.cursor = i
			return
		}
	}
}

// Mark sets the selection to the item whose value is v without moving
// the cursor.
func (s *SingleSelect) Mark(v string) {
	s.selected = -1
	for i, item := range s.Items {
		if item.Value == v {
			s.selected = i
			return
		}
	}
}

// View renders the select list.
func (s SingleSelect) View(width int) string {
	var out string

	itemWidth := width - 6
	if itemWidth < 30 {
		itemWidth = 30
	}

	for i, item := range s.Items {
		isCursor := i == s.cursor
		radio := lipgloss.NewStyle().Foreground(s.DimColor).Render("○")
		if i == s.selected {
			radio = lipgloss.NewStyle().Foreground(s.AccentColor).Render("◉")
		}

		var label string
		if isCursor {
			label = lipgloss.NewStyle().Foreground(s.PrimaryColor).Bold(true).Render(item.Label)
		} else {
			label = lipgloss.NewStyle().Foreground(s.SecondaryColor).Render(item.Label)
		}

		content := fmt.Sprintf("%s  %s", radio, label)
		padding := itemWidth - lipgloss.Width(content) - 4
		if padding > 0 {
			content += strings.Repeat(" ", padding)
		}

		border := s.InactiveBorder.Width(itemWidth)
		if isCursor {
			border = s.ActiveBorder.Width(itemWidth)
		}
		out += "  " + border.Render(content) + "\n"
	}
	return out
}

// Selected returns the index and value of the selected item, or -1 and "".
func (s SingleSelect) Selected() (int, string) {
	if s.selected >= 0 && s.selected < len(s.Items) {
		return s.selected, s.Items[s.selected].Value
	}
	return -1, ""
}

// Cursor returns the index under the cursor.
func (s SingleSelect) Cursor() int {
	return s.cursor
}
