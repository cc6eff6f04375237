package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/measure/catalog"
)

// UnitInfo describes one registered unit for output.
type UnitInfo struct {
	Name      string `json:"name"`
	Dimension string `json:"dimension"`
}

// UnitsResult holds the unit listing for output.
type UnitsResult struct {
	Count int        `json:"count"`
	Units []UnitInfo `json:"units"`
}

// NewUnitsCommand creates the units listing command.
func NewUnitsCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		tables  []string
		dimName string
	)

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the units in the registry",
		Long: `List every unit name the registry knows, optionally restricted to a
named dimension:

  measure units --dim length`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnits(rootOpts, tables, dimName, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&tables, "table", nil, "YAML unit table(s) to load into the registry")
	cmd.Flags().StringVar(&dimName, "dim", "", "restrict to a named catalog dimension")

	return cmd
}

func runUnits(opts *RootOptions, tables []string, dimName string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	registry, err := loadRegistry(formatter, tables)
	if err != nil {
		return err
	}

	filtered := false
	want, ok := catalog.LookupDim(dimName)
	if dimName != "" {
		if !ok {
			return writeFailure(formatter, ExitFailure, ErrCodeBadArgument,
				fmt.Sprintf("unknown dimension %q: see 'measure dims'", dimName))
		}
		filtered = true
	}

	result := UnitsResult{}
	for _, name := range registry.Names() {
		u, _ := registry.Lookup(name)
		if filtered && !u.Dim().Equal(want) {
			continue
		}
		result.Units = append(result.Units, UnitInfo{Name: name, Dimension: u.Dim().String()})
	}
	result.Count = len(result.Units)

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	p := message.NewPrinter(language.English)
	for _, info := range result.Units {
		fmt.Fprintf(formatter.Writer, "%-28s %s\n", info.Name, info.Dimension)
	}
	p.Fprintf(formatter.Writer, "%d unit(s)\n", result.Count)
	return nil
}
