package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/roach88/meetmap/internal/dataset"
	"github.com/roach88/meetmap/internal/join"
)

// PointsOptions holds flags for the points command.
type PointsOptions struct {
	*RootOptions
	JSON bool
}

// PointsResult is the JSON payload of the points command.
type PointsResult struct {
	Points  []join.PlotPoint `json:"points"`
	Legs    []LegSummary     `json:"legs"`
	Missing []string         `json:"missing,omitempty"`
	TotalKm float64          `json:"total_km"`
}

// LegSummary is one year-to-year move, with its distance rounded to 0.1 km.
type LegSummary struct {
	FromYear   int     `json:"from_year"`
	ToYear     int     `json:"to_year"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
}

// NewPointsCommand creates the points command.
func NewPointsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PointsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "points",
		Short: "List the plotted meeting locations",
		Long: `List every meeting that would be plotted, in year order, with its
coordinates and the distance travelled from the previous meeting.

Meetings whose city has no coordinates are reported and skipped, exactly as
when drawing the map.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoints(opts, dataset.Default(), cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "output JSON")

	return cmd
}

func runPoints(opts *PointsOptions, ds *dataset.Dataset, cmd *cobra.Command) error {
	formatter := newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.JSON, opts.Verbose)

	// In JSON mode diagnostics would corrupt the payload; they are carried
	// in the "missing" field instead.
	var diag io.Writer = formatter.Writer
	if opts.JSON {
		diag = nil
	}
	res := join.Join(ds.Meetings, ds.Table(), diag)
	formatter.VerboseLog("Joined %d of %d meeting(s)", res.Len(), len(ds.Meetings))

	result := summarizePoints(res)
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	writePointsText(formatter.Writer, result)
	return nil
}

func summarizePoints(res *join.Result) PointsResult {
	result := PointsResult{
		Points:  res.Points,
		Legs:    []LegSummary{},
		Missing: res.Missing,
	}

	var total float64
	for _, leg := range res.Legs() {
		total += leg.DistanceKm
		result.Legs = append(result.Legs, LegSummary{
			FromYear:   leg.From.Year,
			ToYear:     leg.To.Year,
			From:       leg.From.City,
			To:         leg.To.City,
			DistanceKm: roundTenth(leg.DistanceKm),
		})
	}
	result.TotalKm = roundTenth(total)
	return result
}

func writePointsText(w io.Writer, result PointsResult) {
	fmt.Fprintf(w, "%-6s%-28s%10s%11s%9s\n", "YEAR", "CITY", "LAT", "LON", "KM")
	for i, p := range result.Points {
		km := "-"
		if i > 0 {
			km = fmt.Sprintf("%.0f", result.Legs[i-1].DistanceKm)
		}
		fmt.Fprintf(w, "%-6d%-28s%10.4f%11.4f%9s\n", p.Year, p.City, p.Lat, p.Lon, km)
	}
	fmt.Fprintf(w, "\n%d point(s), %d leg(s), %.0f km in total\n",
		len(result.Points), len(result.Legs), result.TotalKm)
}

func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
