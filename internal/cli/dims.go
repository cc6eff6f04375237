package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/measure/catalog"
)

// DimInfo describes one named dimension for output.
type DimInfo struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
}

// DimsResult holds the dimension listing for output.
type DimsResult struct {
	Basis []string  `json:"basis"`
	Dims  []DimInfo `json:"dims"`
}

// NewDimsCommand creates the dims listing command.
func NewDimsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dims",
		Short:         "List the named catalog dimensions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDims(rootOpts, cmd)
		},
	}
	return cmd
}

func runDims(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result := DimsResult{Basis: catalog.StandardBasis.Names()}
	for _, nd := range catalog.NamedDims() {
		result.Dims = append(result.Dims, DimInfo{Name: nd.Name, Signature: nd.Dim.String()})
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	for _, info := range result.Dims {
		fmt.Fprintf(formatter.Writer, "%-14s %s\n", info.Name, info.Signature)
	}
	return nil
}
