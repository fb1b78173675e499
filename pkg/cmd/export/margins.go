package export

import (
	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
)

func NewMarginsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "margins",
		Short: "winning margins of one season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, func(a *aggregate.Analyzer) (any, error) {
				return a.WinningMargins(year), nil
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "season")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
