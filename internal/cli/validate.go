package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/meetmap/internal/dataset"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Meetings int      `json:"meetings"`
	Cities   int      `json:"cities"`
	Unmapped []string `json:"unmapped,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the embedded meeting history",
		Long: `Check the embedded meeting history against its schema: coordinate
ranges, strictly increasing years and unique city names.

Cities without coordinates are reported as warnings; they do not make the
history invalid.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr(), asJSON, rootOpts.Verbose)
			return runValidate(formatter, dataset.Default())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON")

	return cmd
}

func runValidate(formatter *OutputFormatter, ds *dataset.Dataset) error {
	result := ValidationResult{
		Meetings: len(ds.Meetings),
		Cities:   len(ds.Cities),
	}

	if err := dataset.Validate(ds); err != nil {
		return outputValidationError(formatter, err)
	}

	result.Valid = true
	result.Unmapped = ds.Unmapped()

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Dataset valid: %d meeting(s), %d cities\n", result.Meetings, result.Cities)
	for _, city := range result.Unmapped {
		fmt.Fprintf(formatter.Writer, "  warning: Coordinates for %s not found.\n", city)
	}
	return nil
}

func outputValidationError(formatter *OutputFormatter, err error) error {
	var details interface{}
	var verr *dataset.ValidationError
	if errors.As(err, &verr) {
		details = map[string]string{"field": verr.Field}
	}

	if formatter.Format == "json" {
		_ = formatter.Error(ErrCodeDataset, err.Error(), details)
	} else {
		fmt.Fprintln(formatter.Writer, "✗ Dataset invalid")
		fmt.Fprintf(formatter.Writer, "  %s\n", err)
	}
	return WrapExitError(ExitCommandError, ErrCodeDataset, err)
}
