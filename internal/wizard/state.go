package wizard

// State is one session's wizard state. Step stays within
// FirstStep..LastStep for any sequence of actions passed to Reduce.
type State struct {
	Step StepID   `json:"step" yaml:"step"`
	Data FormData `json:"data" yaml:"data"`
}

// NewState returns the starting state: first step, empty record.
func NewState() State {
	return State{Step: FirstStep}
}

// Action is a request to change State. The set is closed: UpdateField,
// Advance and Retreat.
type Action interface {
	isAction()
}

// UpdateField replaces one field of the record.
type UpdateField struct {
	Field Field
	Value string
}

// Advance moves forward when the current step is valid and not last.
type Advance struct{}

// Retreat moves back one step unless already on the first.
type Retreat struct{}

func (UpdateField) isAction() {}
func (Advance) isAction()     {}
func (Retreat) isAction()     {}

// Reduce applies a to s and returns the resulting state. Rejected
// transitions return s unchanged. A nil Validator means Permissive.
func Reduce(s State, a Action, v Validator) State {
	if v == nil {
		v = Permissive
	}
	switch a := a.(type) {
	case UpdateField:
		s.Data = s.Data.With(a.Field, a.Value)
	case Advance:
		if s.Step < LastStep && v.Valid(s.Step, s.Data) {
			s.Step++
		}
	case Retreat:
		if s.Step > FirstStep {
			s.Step--
		}
	}
	return s
}
