package export

import (
	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
)

func NewConversionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conversion",
		Short: "per-circuit qualifying to race conversion rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, func(a *aggregate.Analyzer) (any, error) {
				return a.QualifyingConversion(window()), nil
			})
		},
	}
	cmd.Flags().IntVar(&startYear, "start", 2000, "first season")
	cmd.Flags().IntVar(&endYear, "end", 2024, "last season")

	return cmd
}
