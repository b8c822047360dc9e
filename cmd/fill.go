package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/efocats/efowizard/internal/logging"
	"github.com/efocats/efowizard/internal/validate"
	"github.com/efocats/efowizard/internal/wizard"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Complete the wizard from flags",
	Long:  "Feed answers through the same three steps as the interactive wizard and print the resulting record.",
	Args:  cobra.NoArgs,
	RunE:  runFill,
}

func init() {
	fillCmd.Flags().String("name", "", "name (step 1)")
	fillCmd.Flags().String("email", "", "email address (step 1)")
	fillCmd.Flags().String("area", "", "area (step 2)")
	fillCmd.Flags().String("plan", "", "plan (step 3)")
	fillCmd.Flags().StringArray("set", nil, "field=value, applied after the named flags (repeatable)")
	fillCmd.Flags().String("format", "yaml", "output format: yaml or json")
}

// BlockedError reports the step at which a scripted run stopped.
type BlockedError struct {
	Step    wizard.StepInfo
	Missing []wizard.Field
}

func (e *BlockedError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("step %d (%s) rejected: value not in catalog", e.Step.ID, e.Step.Label)
	}
	names := make([]string, 0, len(e.Missing))
	for _, f := range e.Missing {
		names = append(names, f.String())
	}
	return fmt.Sprintf("step %d (%s) incomplete: missing %s", e.Step.ID, e.Step.Label, strings.Join(names, ", "))
}

func runFill(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var fallback io.Writer = io.Discard
	if cfg.Verbose {
		fallback = cmd.ErrOrStderr()
	}
	logger, closeLog, err := openLogger(cfg, fallback)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	answers := make(map[wizard.Field]string, 4)
	for _, f := range []wizard.Field{wizard.FieldName, wizard.FieldEmail, wizard.FieldArea, wizard.FieldPlan} {
		answers[f], _ = cmd.Flags().GetString(f.String())
	}
	sets, _ := cmd.Flags().GetStringArray("set")
	if err := parseSets(sets, answers); err != nil {
		return err
	}

	rec, err := fillRecord(answers, validatorFor(cfg), logger)
	if err != nil {
		return err
	}

	if cfg.StrictOptions {
		r, err := validate.Record(rec)
		if err != nil {
			return err
		}
		if !r.IsValid() {
			return fmt.Errorf("record failed validation: %s", strings.Join(r.Errors, "; "))
		}
	}

	format, _ := cmd.Flags().GetString("format")
	return writeDoc(cmd.OutOrStdout(), format, rec)
}

// parseSets applies "field=value" pairs to answers.
func parseSets(pairs []string, answers map[wizard.Field]string) error {
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok {
			return fmt.Errorf("--set %q: expected field=value", p)
		}
		f, err := wizard.ParseField(strings.TrimSpace(name))
		if err != nil {
			return fmt.Errorf("--set %q: %w", p, err)
		}
		answers[f] = value
	}
	return nil
}

// fillRecord walks a fresh machine through every step, entering each
// step's answers and then advancing, exactly as the TUI would.
func fillRecord(answers map[wizard.Field]string, v wizard.Validator, logger logging.Logger) (wizard.FormData, error) {
	m := wizard.NewMachine(wizard.WithValidator(v), wizard.WithLogger(logger))

	for _, step := range wizard.Steps() {
		for _, f := range wizard.RequiredFields(step.ID) {
			m.Update(f, answers[f])
		}
		if step.ID == wizard.LastStep {
			if !m.Complete() {
				return wizard.FormData{}, &BlockedError{Step: step, Missing: m.Missing()}
			}
			break
		}
		m.Advance()
		if m.Step() == step.ID {
			return wizard.FormData{}, &BlockedError{Step: step, Missing: m.Missing()}
		}
	}

	logger.Info("record completed", nil)
	return m.Data(), nil
}

func writeDoc(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	return fmt.Errorf("unknown format %q (known: yaml, json)", format)
}
