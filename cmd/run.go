package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/efocats/efowizard/internal/tui"
	"github.com/efocats/efowizard/internal/tui/steps"
	"github.com/efocats/efowizard/internal/wizard"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive wizard",
	Long:  "Walk through personal information, area and plan in the terminal. The answers are printed on completion and then discarded.",
	Args:  cobra.NoArgs,
	RunE:  runWizard,
}

func runWizard(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("the wizard needs an interactive terminal; use `efowizard fill` for scripted input")
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	styles := tui.NewStyleSet(tui.DetectTheme(cfg.Theme))
	machine := wizard.NewMachine(
		wizard.WithValidator(validatorFor(cfg)),
		wizard.WithLogger(logger),
	)
	model := tui.NewWizardModel(styles, machine, tui.StepSet{
		Personal: steps.NewPersonalStep(styles),
		Area:     steps.NewAreaStep(styles),
		Plan:     steps.NewPlanStep(styles),
	})

	logger.Info("wizard started", map[string]any{"theme": styles.Theme.Name, "strict": cfg.StrictOptions})
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	wm, ok := final.(tui.WizardModel)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	if err := wm.Err(); err != nil {
		logger.Info("wizard cancelled", map[string]any{"step": int(wm.Machine().Step())})
		return err
	}
	if !wm.Done() {
		return tui.ErrCancelled
	}

	logger.Info("wizard completed", nil)
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(styles, wm.Machine().Data(), 80))
	return nil
}
