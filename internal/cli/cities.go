package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/meetmap/internal/dataset"
	"github.com/roach88/meetmap/internal/store"
)

// CitiesOptions holds flags for the cities command.
type CitiesOptions struct {
	*RootOptions
	JSON bool
}

// NewCitiesCommand creates the cities command.
func NewCitiesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CitiesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cities",
		Short: "Summarize how often each city hosted",
		Long: `Summarize the meeting history per host city: how many meetings it
hosted and the first and last year it did.

The summary is computed in a private in-memory SQLite catalog; nothing is
written to disk.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCities(opts, dataset.Default(), cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "output JSON")

	return cmd
}

func runCities(opts *CitiesOptions, ds *dataset.Dataset, cmd *cobra.Command) error {
	formatter := newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.JSON, opts.Verbose)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.OpenDataset(ctx, ds)
	if err != nil {
		_ = formatter.Error(ErrCodeCatalog, err.Error(), nil)
		return WrapExitError(ExitFailure, ErrCodeCatalog, err)
	}
	defer st.Close()

	stats, err := st.HostStats(ctx)
	if err != nil {
		_ = formatter.Error(ErrCodeCatalog, err.Error(), nil)
		return WrapExitError(ExitFailure, ErrCodeCatalog, err)
	}
	formatter.VerboseLog("Loaded %d meeting(s) and %d cities", len(ds.Meetings), len(ds.Cities))

	if formatter.Format == "json" {
		return formatter.Success(stats)
	}

	writeCitiesText(formatter.Writer, stats)
	return nil
}

func writeCitiesText(w io.Writer, stats []store.HostStat) {
	fmt.Fprintf(w, "%-28s%7s%7s%7s\n", "CITY", "COUNT", "FIRST", "LAST")
	meetings := 0
	for _, st := range stats {
		meetings += st.Count
		fmt.Fprintf(w, "%-28s%7d%7d%7d", st.City, st.Count, st.FirstYear, st.LastYear)
		if !st.Mapped {
			fmt.Fprint(w, "  (no coordinates)")
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "\n%d cities, %d meeting(s)\n", len(stats), meetings)
}
