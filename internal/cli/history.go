package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/advent/internal/days"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

func newHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history [day]",
		Short: "Show recorded runs, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("%w: %q is not a day number", puzzle.ErrUnknownDay, args[0])
				}
				if _, err := days.Lookup(n); err != nil {
					return err
				}
				day = n
			}

			answers, err := a.attachLog()
			if err != nil {
				return err
			}
			defer answers.Detach()

			runs, err := answers.Fetch(day)
			if err != nil {
				return systemError{fmt.Errorf("fetch runs: %w", err)}
			}
			if a.flags.jsonMode {
				if runs == nil {
					runs = []puzzle.Run{}
				}
				return writeJSON(cmd.OutOrStdout(), runs)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RUN\tDAY\tPART 1\tPART 2\tMS\tRECORDED")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d\t%s\n",
					r.RunID, r.Day, r.Part1, r.Part2, r.DurationMS, r.CreatedAt.Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}
}
