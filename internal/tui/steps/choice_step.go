package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/efocats/efowizard/internal/tui"
	"github.com/efocats/efowizard/internal/tui/components"
	"github.com/efocats/efowizard/internal/wizard"
)

// ChoiceStep asks for one value out of a fixed list and stores it in a
// single record field.
type ChoiceStep struct {
	styles  *tui.StyleSet
	field   wizard.Field
	heading string
	sel     components.SingleSelect
	kbd     components.KbdHint
}

// NewAreaStep creates the area step.
func NewAreaStep(styles *tui.StyleSet) *ChoiceStep {
	return newChoiceStep(styles, wizard.FieldArea, "お住まいのエリアを選択してください")
}

// NewPlanStep creates the plan step.
func NewPlanStep(styles *tui.StyleSet) *ChoiceStep {
	return newChoiceStep(styles, wizard.FieldPlan, "プランをお選びください")
}

func newChoiceStep(styles *tui.StyleSet, field wizard.Field, heading string) *ChoiceStep {
	kbd := components.NewKbdHint(styles.KbdKey, styles.KbdDesc)
	kbd.Bindings = components.SelectHints()

	return &ChoiceStep{
		styles:  styles,
		field:   field,
		heading: heading,
		sel: components.NewSingleSelect(
			nil,
			styles.Theme.Accent,
			styles.Theme.Primary,
			styles.Theme.Secondary,
			styles.Theme.Dim,
			styles.Theme.Border,
			styles.Theme.ActiveBorder,
		),
		kbd: kbd,
	}
}

// Init loads the options of the active step and marks the stored
// selection, if any.
func (s *ChoiceStep) Init(c wizard.Controller) tea.Cmd {
	switch f := c.Fields().(type) {
	case wizard.AreaFields:
		s.sel.Items = itemsOf(f.Options)
	case wizard.PlanFields:
		s.sel.Items = itemsOf(f.Options)
	}
	s.sel.Select(c.Data().Get(s.field))
	return nil
}

func itemsOf(options []string) []components.SingleSelectItem {
	items := make([]components.SingleSelectItem, 0, len(options))
	for _, o := range options {
		items = append(items, components.SingleSelectItem{Label: o, Value: o})
	}
	return items
}

func (s *ChoiceStep) Update(msg tea.Msg, c wizard.Controller) (tui.Step, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "backspace", "left", "h":
		return s, func() tea.Msg { return tui.StepBackMsg{} }
	}

	var changed bool
	s.sel, changed = s.sel.Update(msg)
	if changed {
		_, v := s.sel.Selected()
		c.Update(s.field, v)
	}

	if key.String() == "enter" {
		return s, func() tea.Msg { return tui.StepNextMsg{} }
	}
	return s, nil
}

// View draws options with selected marked; the cursor is the step's own.
func (s *ChoiceStep) View(selected string, options []string, width int) string {
	sel := s.sel
	sel.Items = itemsOf(options)
	sel.Mark(selected)

	marker := s.styles.ErrorTxt.Render("必須")
	if selected != "" {
		marker = s.styles.DimTxt.Render("必須")
	}
	out := "  " + s.styles.PrimaryTxt.Render(s.heading) + " " + marker + "\n\n"
	out += sel.View(width) + "\n"
	out += s.kbd.View() + "\n"
	return out
}
