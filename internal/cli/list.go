package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/advent/internal/days"
)

type dayJSON struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
	Input string `json:"input"`
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the solved days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := days.All()
			if a.flags.jsonMode {
				out := make([]dayJSON, len(ds))
				for i, d := range ds {
					out[i] = dayJSON{Day: d.Number, Title: d.Title, Input: d.InputName()}
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}
			for _, d := range ds {
				fmt.Fprintf(cmd.OutOrStdout(), "Day %2d  %s\n", d.Number, d.Title)
			}
			return nil
		},
	}
}
