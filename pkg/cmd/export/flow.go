package export

import (
	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
)

func NewFlowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flow",
		Short: "qualifying to finish position flow of one race",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, func(a *aggregate.Analyzer) (any, error) {
				return a.QualifyingFlow(raceID), nil
			})
		},
	}
	cmd.Flags().IntVar(&raceID, "race", 0, "race id")
	_ = cmd.MarkFlagRequired("race")

	return cmd
}
