package cmd

import (
	"github.com/spf13/cobra"

	"github.com/efocats/efowizard/internal/wizard"
)

// catalogDoc is the printable form of the wizard's fixed options.
type catalogDoc struct {
	Steps []wizard.StepInfo `json:"steps" yaml:"steps"`
	Areas []string          `json:"areas" yaml:"areas"`
	Plans []string          `json:"plans" yaml:"plans"`
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the steps, areas and plans",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, _ := cmd.Flags().GetString("format")
		return writeDoc(cmd.OutOrStdout(), format, catalogDoc{
			Steps: wizard.Steps(),
			Areas: wizard.Areas(),
			Plans: wizard.Plans(),
		})
	},
}

func init() {
	catalogCmd.Flags().String("format", "yaml", "output format: yaml or json")
}
