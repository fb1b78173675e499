package export

import (
	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
)

func NewPodiumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "podium",
		Short: "podium hierarchy for the sunburst views",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, func(a *aggregate.Analyzer) (any, error) {
				if byCountry {
					return a.PodiumSunburstByCountry(window(), topN), nil
				}
				return a.PodiumSunburst(year, positions, topN), nil
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 2024, "season (single season variant)")
	cmd.Flags().IntVar(&startYear, "start", 2000, "first season (country variant)")
	cmd.Flags().IntVar(&endYear, "end", 2024, "last season (country variant)")
	cmd.Flags().IntSliceVar(&positions, "positions", []int{1, 2, 3},
		"podium positions to include")
	cmd.Flags().IntVar(&topN, "top", 10, "number of drivers to keep")
	cmd.Flags().BoolVar(&byCountry, "by-country", false,
		"build the position/country/race-type hierarchy over the window instead")

	return cmd
}
