package export

import (
	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
)

func NewReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "precomputed lap-by-lap replay state of one race",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, func(a *aggregate.Analyzer) (any, error) {
				return a.RaceReplay(raceID), nil
			})
		},
	}
	cmd.Flags().IntVar(&raceID, "race", 0, "race id")
	_ = cmd.MarkFlagRequired("race")

	return cmd
}
