package wizard

import "slices"

// StepID identifies a wizard step. Valid ids are FirstStep..LastStep.
type StepID int

const (
	StepPersonal StepID = 1
	StepArea     StepID = 2
	StepPlan     StepID = 3

	FirstStep = StepPersonal
	LastStep  = StepPlan
)

// StepInfo is a step id and its display label.
type StepInfo struct {
	ID    StepID `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

var (
	steps = []StepInfo{
		{ID: StepPersonal, Label: "個人情報"},
		{ID: StepArea, Label: "エリア選択"},
		{ID: StepPlan, Label: "プラン選択"},
	}
	areas = []string{"大阪", "東京", "名古屋", "福岡"}
	plans = []string{"ベーシック", "スタンダード", "プレミアム"}
)

// Steps returns the ordered step sequence.
func Steps() []StepInfo { return slices.Clone(steps) }

// Areas returns the selectable area names in display order.
func Areas() []string { return slices.Clone(areas) }

// Plans returns the selectable plan names in display order.
func Plans() []string { return slices.Clone(plans) }

// IsArea reports whether s is one of the known areas.
func IsArea(s string) bool { return slices.Contains(areas, s) }

// IsPlan reports whether s is one of the known plans.
func IsPlan(s string) bool { return slices.Contains(plans, s) }

// Label returns the display label for id, or "" when id is out of range.
func (id StepID) Label() string {
	if !id.Valid() {
		return ""
	}
	return steps[id-1].Label
}

// Valid reports whether id names an existing step.
func (id StepID) Valid() bool {
	return id >= FirstStep && id <= LastStep
}
