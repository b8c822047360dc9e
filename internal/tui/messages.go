package tui

// StepNextMsg asks the wizard to move forward, or to finish on the last step.
type StepNextMsg struct{}

// StepBackMsg asks the wizard to move back one step.
type StepBackMsg struct{}
