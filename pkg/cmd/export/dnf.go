package export

import (
	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
)

func NewDNFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dnf",
		Short: "retirement rate heatmap per constructor and season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, func(a *aggregate.Analyzer) (any, error) {
				return a.DNFHeatmap(window()), nil
			})
		},
	}
	cmd.Flags().IntVar(&startYear, "start", 2010, "first season")
	cmd.Flags().IntVar(&endYear, "end", 2024, "last season")

	return cmd
}
