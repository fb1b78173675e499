package export

import (
	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
)

func NewTrackPerformanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trackperf",
		Short: "driver points leaderboard at one circuit",
		RunE: func(cmd *cobra.Command, args []string) error {
			metric, err := aggregate.ParseMetric(metricArg)
			if err != nil {
				return err
			}
			return runExport(cmd, func(a *aggregate.Analyzer) (any, error) {
				return a.TrackPerformance(circuitID, window(), metric), nil
			})
		},
	}
	cmd.Flags().IntVar(&circuitID, "circuit", 0, "circuit id")
	cmd.Flags().IntVar(&startYear, "start", 2000, "first season")
	cmd.Flags().IntVar(&endYear, "end", 2024, "last season")
	cmd.Flags().StringVar(&metricArg, "metric", "avg", "ranking metric (avg, sum)")
	_ = cmd.MarkFlagRequired("circuit")

	return cmd
}
