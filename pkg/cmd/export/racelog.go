package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
)

func NewRaceLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "racelog",
		Short: "merged qualifying, lap and pit detail of one driver in one race",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, func(a *aggregate.Analyzer) (any, error) {
				entry, ok := a.DriverRaceLog(raceID, driverID)
				if !ok {
					return nil, fmt.Errorf("unknown race id %d", raceID)
				}
				return entry, nil
			})
		},
	}
	cmd.Flags().IntVar(&raceID, "race", 0, "race id")
	cmd.Flags().IntVar(&driverID, "driver", 0, "driver id")
	_ = cmd.MarkFlagRequired("race")
	_ = cmd.MarkFlagRequired("driver")

	return cmd
}
