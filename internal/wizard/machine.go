package wizard

import "github.com/efocats/efowizard/internal/logging"

// Controller is what a presentation layer needs from a wizard session:
// the active step and its fields, the record, step validity, and the
// field update and transition requests.
type Controller interface {
	Step() StepID
	Fields() StepFields
	Data() FormData
	CurrentStepValid() bool
	Update(field Field, value string)
	Advance()
	Retreat()
}

// Machine owns the State of a single session. It is not safe for
// concurrent use; callers drive it from one event loop.
type Machine struct {
	state     State
	validator Validator
	logger    logging.Logger
}

var _ Controller = (*Machine)(nil)

// Option configures a Machine.
type Option func(*Machine)

// WithValidator replaces the Permissive validator.
func WithValidator(v Validator) Option {
	return func(m *Machine) {
		if v != nil {
			m.validator = v
		}
	}
}

// WithLogger sets the logger used for transition traces.
func WithLogger(l logging.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMachine starts a session at the first step with an empty record.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		state:     NewState(),
		validator: Permissive,
		logger:    logging.Nop{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns a copy of the current state.
func (m *Machine) State() State { return m.state }

func (m *Machine) Step() StepID       { return m.state.Step }
func (m *Machine) Data() FormData     { return m.state.Data }
func (m *Machine) Fields() StepFields { return FieldsFor(m.state) }

// CurrentStepValid reports whether the active step may be left forward.
// It is recomputed on each call.
func (m *Machine) CurrentStepValid() bool {
	return m.validator.Valid(m.state.Step, m.state.Data)
}

// Missing lists the empty required fields of the active step.
func (m *Machine) Missing() []Field {
	return Missing(m.state.Step, m.state.Data)
}

// Complete reports whether the session sits on the last step with a
// valid record. Reaching it triggers nothing; callers decide what
// completion means.
func (m *Machine) Complete() bool {
	return m.state.Step == LastStep && m.CurrentStepValid()
}

func (m *Machine) Update(field Field, value string) {
	m.Dispatch(UpdateField{Field: field, Value: value})
}

func (m *Machine) Advance() { m.Dispatch(Advance{}) }
func (m *Machine) Retreat() { m.Dispatch(Retreat{}) }

// Dispatch runs a through Reduce and stores the result.
func (m *Machine) Dispatch(a Action) {
	prev := m.state
	m.state = Reduce(prev, a, m.validator)

	switch a := a.(type) {
	case UpdateField:
		m.logger.Debug("field updated", map[string]any{"step": int(prev.Step), "field": a.Field.String()})
	case Advance, Retreat:
		if prev.Step == m.state.Step {
			m.logger.Debug("transition ignored", map[string]any{"step": int(prev.Step), "action": actionName(a)})
			return
		}
		m.logger.Debug("step changed", map[string]any{"from": int(prev.Step), "to": int(m.state.Step)})
	}
}

func actionName(a Action) string {
	switch a.(type) {
	case UpdateField:
		return "update"
	case Advance:
		return "advance"
	case Retreat:
		return "retreat"
	}
	return "unknown"
}

// StepProgress is one entry of the progress indicator.
type StepProgress struct {
	StepInfo
	Reached bool // current step is at or past this one
	Passed  bool // current step is past this one
}

// Progress is the data behind a step indicator.
type Progress struct {
	Current StepID
	Total   int
	Steps   []StepProgress
}

// Progress returns the indicator model for the current step.
func (m *Machine) Progress() Progress {
	return ProgressOf(m.state.Step)
}

// ProgressOf builds the indicator model for current.
func ProgressOf(current StepID) Progress {
	p := Progress{Current: current, Total: len(steps)}
	for _, s := range steps {
		p.Steps = append(p.Steps, StepProgress{
			StepInfo: s,
			Reached:  current >= s.ID,
			Passed:   current > s.ID,
		})
	}
	return p
}
