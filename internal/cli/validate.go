package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/measure/catalog"
)

// ValidateResult holds validation results.
type ValidateResult struct {
	Valid bool   `json:"valid"`
	File  string `json:"file"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <table.yaml>",
		Short: "Validate a unit table without loading it",
		Long: `Validate a YAML unit table against the table schema.

Performs schema validation only; the table is not loaded into a
registry, so duplicate names against the built-in catalog are not
detected here.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return writeFailure(formatter, ExitCommandError, ErrCodeNotFound,
			fmt.Sprintf("reading %s: %v", path, err))
	}

	if err := catalog.ValidateTable(data); err != nil {
		return writeFailure(formatter, ExitFailure, ErrCodeInvalidTable, err.Error())
	}

	if opts.Format == "json" {
		return formatter.Success(ValidateResult{Valid: true, File: path})
	}
	fmt.Fprintf(formatter.Writer, "✓ unit table valid: %s\n", path)
	return nil
}
