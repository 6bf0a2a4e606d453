package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/meetmap/internal/render"
)

// DefaultOutput is the base output filename, without extension.
const DefaultOutput = "educause_meetings_map"

// RootOptions holds the flags of the root (render) command and the global
// verbose flag shared with subcommands.
type RootOptions struct {
	Verbose bool
	Output  string // base filename, no extension
	Format  string // "pdf" | "png" | "jpg"
	Yes     bool   // overwrite without asking

	// Confirmer answers the overwrite prompt (for testing).
	// If nil, the prompt is read from the command's input.
	Confirmer Confirmer
}

// NewRootCommand creates the root command for the meetmap CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "meetmap",
		Short: "Plot the Educause annual meeting locations on a US map",
		Long: `Plot the locations of the Educause annual meetings on a map of the
continental United States.

Each host city gets a marker and a "year: city" label, and an arrow leads
from every meeting to the next one in year order. The map is written to
<output>.<format>; an existing file is only replaced after confirmation.

Example:
  meetmap
  meetmap -o meetings -f png
  meetmap --output /tmp/history --format jpg --yes`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - main prints them once
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, cmd)
		},
	}

	formats := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		formats = append(formats, string(f))
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Render flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", DefaultOutput, "output filename without extension")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", string(render.DefaultFormat),
		fmt.Sprintf("output file format (%s)", strings.Join(formats, "|")))
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "overwrite an existing file without asking")

	// Add subcommands
	cmd.AddCommand(NewPointsCommand(opts))
	cmd.AddCommand(NewCitiesCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// configureLogging installs a text slog handler on w. Verbose enables debug
// records.
func configureLogging(verbose bool, w io.Writer) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
