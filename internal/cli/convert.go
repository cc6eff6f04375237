package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/measure/catalog"
)

// ConvertResult holds a single conversion for output.
type ConvertResult struct {
	Value     float64 `json:"value"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Result    float64 `json:"result"`
	Dimension string  `json:"dimension"`
	Absolute  bool    `json:"absolute,omitempty"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		tables   []string
		absolute bool
	)

	cmd := &cobra.Command{
		Use:   "convert <value> <from-unit> <to-unit>",
		Short: "Convert a value between two units of the same dimension",
		Long: `Convert a value from one named unit to another.

Units are looked up by exact name in the built-in catalog, optionally
extended with --table files. Use --absolute to convert points on affine
scales (temperature readings) rather than differences:

  measure convert 5 kilometers meters
  measure convert --absolute 25 celsius fahrenheit`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args, tables, absolute, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&tables, "table", nil, "YAML unit table(s) to load into the registry")
	cmd.Flags().BoolVar(&absolute, "absolute", false, "convert a point on an affine scale instead of a difference")

	return cmd
}

func runConvert(opts *RootOptions, args, tables []string, absolute bool, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return writeFailure(formatter, ExitCommandError, ErrCodeBadArgument,
			fmt.Sprintf("invalid value %q: must be a number", args[0]))
	}
	from, to := args[1], args[2]

	registry, err := loadRegistry(formatter, tables)
	if err != nil {
		return err
	}

	var result float64
	if absolute {
		result, err = registry.ConvertPoint(value, from, to)
	} else {
		result, err = registry.Convert(value, from, to)
	}
	if err != nil {
		switch {
		case catalog.IsUnknownUnit(err):
			return writeFailure(formatter, ExitFailure, ErrCodeUnknownUnit, err.Error())
		case catalog.IsMismatch(err):
			return writeFailure(formatter, ExitFailure, ErrCodeMismatch, err.Error())
		default:
			return writeFailure(formatter, ExitFailure, ErrCodeGeneric, err.Error())
		}
	}

	fu, _ := registry.Lookup(from)
	data := ConvertResult{
		Value:     value,
		From:      from,
		To:        to,
		Result:    result,
		Dimension: fu.Dim().String(),
		Absolute:  absolute,
	}

	if opts.Format == "json" {
		return formatter.Success(data)
	}

	// Localized number rendering for human output.
	p := message.NewPrinter(language.English)
	p.Fprintf(formatter.Writer, "%v %s = %v %s\n", value, from, result, to)
	formatter.VerboseLog("dimension: %s", data.Dimension)
	return nil
}
