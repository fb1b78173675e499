package export

import (
	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
	"github.com/f1viz/f1viz-data-go/pkg/palette"
)

// dominanceExport bundles the series with the color assignment the renderer
// needs for stable layer colors.
type dominanceExport struct {
	Data   any            `json:"data"`
	Colors map[int]string `json:"colors,omitempty"`
}

func NewDominanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dominance",
		Short: "stacked constructor points per season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, func(a *aggregate.Analyzer) (any, error) {
				dom := a.ConstructorDominance(window())
				if !palettize {
					return dom, nil
				}
				ids := make([]int, 0, len(dom.Constructors))
				for _, c := range dom.Constructors {
					ids = append(ids, c.ConstructorID)
				}
				return &dominanceExport{Data: dom, Colors: palette.ForConstructors(ids)}, nil
			})
		},
	}
	cmd.Flags().IntVar(&startYear, "start", 2010, "first season")
	cmd.Flags().IntVar(&endYear, "end", 2024, "last season")
	cmd.Flags().BoolVar(&palettize, "colors", false,
		"include the constructor color assignment")

	return cmd
}
