// Package wizard holds the three-step form wizard: the static catalog of
// steps and options, the FormData record, per-step validation and the
// reducer that moves a session between steps.
//
// Nothing here renders or does I/O. A presentation layer drives a Machine
// through the Controller interface and reads the active step's fields via
// the StepFields variant.
package wizard
