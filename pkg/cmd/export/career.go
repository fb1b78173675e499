package export

import (
	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
)

func NewCareerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "career",
		Short: "per-season points and constructor of one driver",
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := aggregate.ParseCareerPolicy(policyArg)
			if err != nil {
				return err
			}
			return runExport(cmd, func(a *aggregate.Analyzer) (any, error) {
				return a.CareerProgression(driverID, window(), policy), nil
			})
		},
	}
	cmd.Flags().IntVar(&driverID, "driver", 0, "driver id")
	cmd.Flags().IntVar(&startYear, "start", 2000, "first season")
	cmd.Flags().IntVar(&endYear, "end", 2024, "last season")
	cmd.Flags().StringVar(&policyArg, "policy", "dense",
		"season fill policy (dense: zero-fill idle seasons, active: drop them)")
	_ = cmd.MarkFlagRequired("driver")

	return cmd
}
