package steps

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/efocats/efowizard/internal/tui"
	"github.com/efocats/efowizard/internal/tui/components"
	"github.com/efocats/efowizard/internal/wizard"
)

// PersonalStep collects the name and email. Every keystroke is written to
// the record; enter asks the wizard to move on.
type PersonalStep struct {
	inputs [2]components.TextInput
	fields [2]wizard.Field
	focus  int
	kbd    components.KbdHint
}

// NewPersonalStep creates the first step.
func NewPersonalStep(styles *tui.StyleSet) *PersonalStep {
	newInput := func(label, placeholder string) components.TextInput {
		return components.NewTextInput(
			label,
			placeholder,
			true,
			styles.Theme.Accent,
			styles.PrimaryTxt,
			styles.ErrorTxt,
			styles.DimTxt,
			styles.InactiveBorder,
			styles.ActiveBorder,
		)
	}

	kbd := components.NewKbdHint(styles.KbdKey, styles.KbdDesc)
	kbd.Bindings = components.InputHints()

	return &PersonalStep{
		inputs: [2]components.TextInput{
			newInput("氏名", "タナカ タロウ"),
			newInput("メールアドレス", "****@example.com"),
		},
		fields: [2]wizard.Field{wizard.FieldName, wizard.FieldEmail},
		kbd:    kbd,
	}
}

// Init loads the stored values and focuses the first empty field.
func (s *PersonalStep) Init(c wizard.Controller) tea.Cmd {
	d := c.Data()
	for i, f := range s.fields {
		s.inputs[i].SetValue(d.Get(f))
	}
	s.focus = 0
	if d.Name != "" && d.Email == "" {
		s.focus = 1
	}
	return s.refocus()
}

func (s *PersonalStep) refocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range s.inputs {
		if i == s.focus {
			cmd = s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
	return cmd
}

func (s *PersonalStep) Update(msg tea.Msg, c wizard.Controller) (tui.Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			s.focus = (s.focus + 1) % len(s.inputs)
			return s, s.refocus()
		case "shift+tab", "up":
			s.focus = (s.focus + len(s.inputs) - 1) % len(s.inputs)
			return s, s.refocus()
		case "enter":
			return s, func() tea.Msg { return tui.StepNextMsg{} }
		}
	}

	in, cmd := s.inputs[s.focus].Update(msg)
	s.inputs[s.focus] = in
	if v := in.Value(); v != c.Data().Get(s.fields[s.focus]) {
		c.Update(s.fields[s.focus], v)
	}
	return s, cmd
}

func (s *PersonalStep) View(f wizard.PersonalFields, width int) string {
	missing := wizard.Missing(wizard.StepPersonal, wizard.FormData{Name: f.Name, Email: f.Email})
	var out string
	for i := range s.inputs {
		out += s.inputs[i].View(width, slices.Contains(missing, s.fields[i])) + "\n"
	}
	out += s.kbd.View() + "\n"
	return out
}

// Focused returns the field that has keyboard focus.
func (s *PersonalStep) Focused() wizard.Field {
	return s.fields[s.focus]
}
