package export

import (
	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
)

// optionLists bundles the selector feeds of the interactive views.
type optionLists struct {
	Seasons      []int `json:"seasons"`
	Races        any   `json:"races,omitempty"`
	Drivers      any   `json:"drivers,omitempty"`
	Constructors any   `json:"constructors,omitempty"`
}

func NewOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "selector option lists (seasons, races, drivers, constructors)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, func(a *aggregate.Analyzer) (any, error) {
				ret := &optionLists{Seasons: a.Seasons()}
				if year > 0 {
					ret.Races = a.RacesForYear(year)
					ret.Constructors = a.ActiveConstructors(year)
				}
				ret.Drivers = a.CareerDrivers(window(), startYear)
				return ret, nil
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0,
		"also list races and constructors of this season")
	cmd.Flags().IntVar(&startYear, "start", 2000, "first season for the driver list")
	cmd.Flags().IntVar(&endYear, "end", 2024, "last season for the driver list")

	return cmd
}
