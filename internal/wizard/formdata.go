package wizard

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned by ParseField for names outside the record.
var ErrUnknownField = errors.New("unknown field")

// Field names one entry of FormData.
type Field int

const (
	FieldName Field = iota + 1
	FieldEmail
	FieldArea
	FieldPlan
)

var fieldNames = map[Field]string{
	FieldName:  "name",
	FieldEmail: "email",
	FieldArea:  "area",
	FieldPlan:  "plan",
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// ParseField maps "name", "email", "area" or "plan" to its Field.
func ParseField(s string) (Field, error) {
	for f, n := range fieldNames {
		if n == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownField, s)
}

// FormData is the record of answers collected across the wizard.
// Area and Plan hold a single selection each; "" means unset.
type FormData struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Area  string `json:"area" yaml:"area"`
	Plan  string `json:"plan" yaml:"plan"`
}

// With returns a copy of d where only field is set to value. Values are
// stored as given; validity is checked at transition time, not here.
func (d FormData) With(field Field, value string) FormData {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldArea:
		d.Area = value
	case FieldPlan:
		d.Plan = value
	}
	return d
}

// Get returns the stored value of field.
func (d FormData) Get(field Field) string {
	switch field {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldArea:
		return d.Area
	case FieldPlan:
		return d.Plan
	}
	return ""
}
