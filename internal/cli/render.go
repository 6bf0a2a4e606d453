package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/meetmap/internal/dataset"
	"github.com/roach88/meetmap/internal/join"
	"github.com/roach88/meetmap/internal/render"
)

// Messages printed by the render command.
const (
	MsgCancelled = "Operation cancelled by the user."
	MsgSavedFmt  = "Map saved to %s\n"
)

// BuildMap joins the dataset and draws it. Missing-coordinate diagnostics
// go to diag.
func BuildMap(ds *dataset.Dataset, diag io.Writer) (*render.Map, *join.Result, error) {
	res := join.Join(ds.Meetings, ds.Table(), diag)
	m, err := render.New(res, render.DefaultOptions(ds.Title))
	if err != nil {
		return nil, nil, err
	}
	return m, res, nil
}

func runRender(opts *RootOptions, cmd *cobra.Command) error {
	configureLogging(opts.Verbose, cmd.ErrOrStderr())
	log := slog.With("run_id", uuid.NewString())
	out := cmd.OutOrStdout()

	format, err := render.ParseFormat(opts.Format)
	if err != nil {
		return WrapExitError(ExitCommandError, ErrCodeInvalidFormat, err)
	}
	path := render.OutputPath(opts.Output, format)

	outcome := Proceed
	if !opts.Yes {
		confirmer := opts.Confirmer
		if confirmer == nil {
			confirmer = newPrompter(cmd)
		}
		outcome, err = ConfirmOverwrite(path, confirmer)
		if err != nil {
			return WrapExitError(ExitCommandError, ErrCodeOutputPath, err)
		}
	}
	log.Debug("overwrite check", "path", path, "outcome", outcome)

	if outcome == Cancelled {
		fmt.Fprintln(out, MsgCancelled)
		return nil
	}

	m, res, err := BuildMap(dataset.Default(), out)
	if err != nil {
		return WrapExitError(ExitFailure, "drawing map", err)
	}
	log.Debug("meetings joined", "points", res.Len(), "missing", len(res.Missing))

	if err := m.Save(path, format); err != nil {
		return WrapExitError(ExitFailure, ErrCodeWriteFailed, err)
	}
	log.Info("map saved", "path", path, "format", format, "arrows", m.Arrows)

	fmt.Fprintf(out, MsgSavedFmt, path)
	return nil
}
