package wizard

import "strings"

// Validator decides whether a step's fields allow moving forward.
type Validator interface {
	Valid(step StepID, data FormData) bool
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(step StepID, data FormData) bool

func (f ValidatorFunc) Valid(step StepID, data FormData) bool { return f(step, data) }

var (
	// Permissive checks presence only: any non-empty area or plan passes.
	Permissive Validator = ValidatorFunc(Valid)

	// Strict also requires area and plan to be members of the catalog.
	Strict Validator = ValidatorFunc(validStrict)
)

// Valid reports whether step's required fields are filled in data.
// Names and emails must be non-blank after trimming; area and plan must
// be non-empty. Unknown steps are never valid.
func Valid(step StepID, data FormData) bool {
	return step.Valid() && len(Missing(step, data)) == 0
}

func validStrict(step StepID, data FormData) bool {
	if !Valid(step, data) {
		return false
	}
	switch step {
	case StepArea:
		return IsArea(data.Area)
	case StepPlan:
		return IsPlan(data.Plan)
	}
	return true
}

// RequiredFields returns the fields step asks for.
func RequiredFields(step StepID) []Field {
	switch step {
	case StepPersonal:
		return []Field{FieldName, FieldEmail}
	case StepArea:
		return []Field{FieldArea}
	case StepPlan:
		return []Field{FieldPlan}
	}
	return nil
}

// Missing lists the required fields of step that are still empty.
func Missing(step StepID, data FormData) []Field {
	var out []Field
	for _, f := range RequiredFields(step) {
		v := data.Get(f)
		// Free-text fields must hold more than whitespace; selections only
		// need to be set.
		if f == FieldName || f == FieldEmail {
			v = strings.TrimSpace(v)
		}
		if v == "" {
			out = append(out, f)
		}
	}
	return out
}
