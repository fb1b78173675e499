package export

import (
	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
)

func NewContributionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contributions",
		Short: "driver points share within one constructor season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, func(a *aggregate.Analyzer) (any, error) {
				return a.DriverContributions(year, constructorID), nil
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "season")
	cmd.Flags().IntVar(&constructorID, "constructor", 0, "constructor id")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("constructor")

	return cmd
}
