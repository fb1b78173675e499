package export

import (
	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
)

func NewTrajectoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trajectory",
		Short: "round-by-round standings positions of one season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, func(a *aggregate.Analyzer) (any, error) {
				return a.SeasonTrajectory(year), nil
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "season")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
