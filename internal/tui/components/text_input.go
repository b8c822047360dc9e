package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInput is a labelled text field wrapping bubbles/textinput. It keeps
// no notion of "done": every edit is visible through Value immediately.
type TextInput struct {
	Label    string
	Required bool
	input    textinput.Model

	// Styles
	LabelStyle     lipgloss.Style
	RequiredStyle  lipgloss.Style
	SatisfiedStyle lipgloss.Style
	BorderStyle    lipgloss.Style
	FocusStyle     lipgloss.Style
}

// NewTextInput creates a new styled, unfocused text input.
func NewTextInput(label, placeholder string, required bool, accentColor lipgloss.Color, labelStyle, requiredStyle, satisfiedStyle, borderStyle, focusStyle lipgloss.Style) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 0 // no limit: every keystroke must reach the record
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(accentColor)

	return TextInput{
		Label:          label,
		Required:       required,
		input:          ti,
		LabelStyle:     labelStyle,
		RequiredStyle:  requiredStyle,
		SatisfiedStyle: satisfiedStyle,
		BorderStyle:    borderStyle,
		FocusStyle:     focusStyle,
	}
}

// Focus gives the field keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.input.Blur()
}

// Focused reports whether the field has focus.
func (t TextInput) Focused() bool {
	return t.input.Focused()
}

// Update forwards msg to the underlying input.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// View renders the label and the bordered field. The required marker is
// highlighted while missing is true.
func (t TextInput) View(width int, missing bool) string {
	label := t.LabelStyle.Render(t.Label)
	if t.Required {
		marker := t.RequiredStyle
		if !missing {
			marker = t.SatisfiedStyle
		}
		label += " " + marker.Render("必須")
	}
	out := "  " + label + "\n"

	inputWidth := width - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	t.input.Width = inputWidth

	border := t.BorderStyle
	if t.input.Focused() {
		border = t.FocusStyle
	}
	out += "  " + border.Width(inputWidth).Render(t.input.View()) + "\n"
	return out
}

// Value returns the raw input value, untrimmed.
func (t TextInput) Value() string {
	return t.input.Value()
}

// SetValue sets the input value.
func (t *TextInput) SetValue(v string) {
	t.input.SetValue(v)
}
