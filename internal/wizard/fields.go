package wizard

// StepFields describes what the active step asks for. It is one of
// PersonalFields, AreaFields or PlanFields.
type StepFields interface {
	Step() StepID
	isStepFields()
}

// PersonalFields are the free-text entries of the first step.
type PersonalFields struct {
	Name  string
	Email string
}

// AreaFields is the area choice of the second step.
type AreaFields struct {
	Selected string
	Options  []string
}

// PlanFields is the plan choice of the third step.
type PlanFields struct {
	Selected string
	Options  []string
}

func (PersonalFields) Step() StepID { return StepPersonal }
func (AreaFields) Step() StepID     { return StepArea }
func (PlanFields) Step() StepID     { return StepPlan }

func (PersonalFields) isStepFields() {}
func (AreaFields) isStepFields()     {}
func (PlanFields) isStepFields()     {}

// FieldsFor returns the variant for s.Step filled from s.Data, or nil
// when the step is out of range.
func FieldsFor(s State) StepFields {
	switch s.Step {
	case StepPersonal:
		return PersonalFields{Name: s.Data.Name, Email: s.Data.Email}
	case StepArea:
		return AreaFields{Selected: s.Data.Area, Options: Areas()}
	case StepPlan:
		return PlanFields{Selected: s.Data.Plan, Options: Plans()}
	}
	return nil
}
