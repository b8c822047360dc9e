package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/efocats/efowizard/internal/wizard"
)

// ErrCancelled is returned by Err when the user quits before finishing.
var ErrCancelled = errors.New("wizard cancelled")

// WizardModel is the top-level bubbletea model. It renders the machine's
// active step and turns step requests into machine transitions.
type WizardModel struct {
	styles  *StyleSet
	machine *wizard.Machine
	steps   StepSet
	width   int
	height  int
	done    bool
	err     error
}

// NewWizardModel creates a wizard driving machine with the given steps.
func NewWizardModel(styles *StyleSet, machine *wizard.Machine, steps StepSet) WizardModel {
	return WizardModel{
		styles:  styles,
		machine: machine,
		steps:   steps,
		width:   80,
		height:  24,
	}
}

// Init initializes the active step.
func (w WizardModel) Init() tea.Cmd {
	if st := w.steps.active(w.machine.Step()); st != nil {
		return st.Init(w.machine)
	}
	return nil
}

// Update handles messages for the wizard.
func (w WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			w.err = ErrCancelled
			return w, tea.Quit
		}

	case StepNextMsg:
		if w.machine.Complete() {
			w.done = true
			return w, tea.Quit
		}
		return w, w.transition(w.machine.Advance)

	case StepBackMsg:
		return w, w.transition(w.machine.Retreat)
	}

	id := w.machine.Step()
	st := w.steps.active(id)
	if st == nil {
		return w, nil
	}
	updated, cmd := st.Update(msg, w.machine)
	w.steps.replace(id, updated)
	return w, cmd
}

// transition runs move and re-initializes the step that becomes active.
// Rejected moves leave everything as it was.
func (w *WizardModel) transition(move func()) tea.Cmd {
	before := w.machine.Step()
	move()
	if w.machine.Step() == before {
		return nil
	}
	if st := w.steps.active(w.machine.Step()); st != nil {
		return st.Init(w.machine)
	}
	return nil
}

// View renders the entire wizard UI.
func (w WizardModel) View() string {
	if w.done || w.err != nil {
		return ""
	}

	p := w.machine.Progress()
	out := "\n" + RenderProgress(p, w.styles) + "\n"
	out += RenderBanner(w.styles, w.width) + "\n"

	switch f := w.machine.Fields().(type) {
	case wizard.PersonalFields:
		out += w.steps.Personal.View(f, w.width)
	case wizard.AreaFields:
		out += w.steps.Area.View(f.Selected, f.Options, w.width)
	case wizard.PlanFields:
		out += w.steps.Plan.View(f.Selected, f.Options, w.width)
	}

	out += "\n" + RenderNav(p, w.machine.CurrentStepValid(), w.styles) + "\n"
	return out
}

// Machine returns the session the wizard drives.
func (w WizardModel) Machine() *wizard.Machine {
	return w.machine
}

// Err returns ErrCancelled if the user quit early.
func (w WizardModel) Err() error {
	return w.err
}

// Done returns true if the wizard completed successfully.
func (w WizardModel) Done() bool {
	return w.done
}
