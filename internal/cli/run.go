package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/days"
	"github.com/mesh-intelligence/advent/internal/runner"
	"github.com/mesh-intelligence/advent/internal/sqlite"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

const flagJobs = "jobs"

// solveFlags are shared by run and all.
type solveFlags struct {
	record bool
	check  bool
	jobs   int
}

func (f *solveFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.record, "record", false, "append the answers to the answer log")
	cmd.Flags().BoolVar(&f.check, "check", false, "fail if an answer differs from the latest recorded run for the same input")
	cmd.Flags().IntVarP(&f.jobs, flagJobs, "j", defaultJobs, "days solved at once")
}

func newRunCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "run <day>...",
		Short: "Solve the named days",
		Example: `  advent run 1
  advent run 11 17 --check
  advent run 23 --record --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := parseDays(args)
			if err != nil {
				return err
			}
			return a.solve(cmd, f, ds)
		},
	}
	f.register(cmd)
	return cmd
}

func newAllCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every day whose input file exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.runner()
			if err != nil {
				return err
			}
			ds := r.Available(days.All())
			if len(ds) == 0 {
				return fmt.Errorf("%w: no day inputs in %s", puzzle.ErrInputMissing, r.InputDir)
			}
			return a.solve(cmd, f, ds)
		},
	}
	f.register(cmd)
	return cmd
}

// parseDays resolves day numbers to registered days, keeping argument order
// and dropping repeats.
func parseDays(args []string) ([]days.Day, error) {
	seen := make(map[int]bool)
	var ds []days.Day
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a day number", puzzle.ErrUnknownDay, arg)
		}
		d, err := days.Lookup(n)
		if err != nil {
			return nil, err
		}
		if !seen[n] {
			seen[n] = true
			ds = append(ds, d)
		}
	}
	return ds, nil
}

func (a *app) runner() (*runner.Runner, error) {
	dir, err := a.inputDir()
	if err != nil {
		return nil, systemError{fmt.Errorf("resolve input dir: %w", err)}
	}
	return &runner.Runner{
		InputDir: dir,
		Jobs:     a.cfg.GetInt(cfgKeyJobs),
		Params:   a.params,
		Log:      a.log,
	}, nil
}

// attachLog opens the answer log. The caller must Detach it.
func (a *app) attachLog() (*sqlite.Backend, error) {
	dir, err := a.dataDir()
	if err != nil {
		return nil, systemError{fmt.Errorf("resolve data dir: %w", err)}
	}
	b := sqlite.NewBackend(a.log)
	if err := b.Attach(puzzle.Config{DataDir: dir}); err != nil {
		return nil, systemError{fmt.Errorf("attach answer log: %w", err)}
	}
	return b, nil
}

// solve runs ds, prints the answers and then checks and records them as
// asked. A changed answer is reported after every day is printed.
func (a *app) solve(cmd *cobra.Command, f solveFlags, ds []days.Day) error {
	r, err := a.runner()
	if err != nil {
		return err
	}
	results, err := r.RunAll(cmd.Context(), ds)
	if err != nil {
		return err
	}
	if err := a.printResults(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	if !f.record && !f.check {
		return nil
	}

	answers, err := a.attachLog()
	if err != nil {
		return err
	}
	defer answers.Detach()

	var changed []error
	if f.check {
		for _, res := range results {
			err := checkResult(answers, res)
			switch {
			case errors.Is(err, puzzle.ErrNotFound):
				fmt.Fprintf(cmd.ErrOrStderr(), "Day %d: no recorded run for this input\n", res.Day.Number)
			case errors.Is(err, puzzle.ErrAnswerChanged):
				changed = append(changed, err)
			case err != nil:
				return systemError{err}
			}
		}
	}
	if f.record {
		for _, res := range results {
			run := res.Run()
			if err := answers.Record(&run); err != nil {
				return systemError{fmt.Errorf("record day %d: %w", res.Day.Number, err)}
			}
			a.log.Debug("recorded", zap.Int("day", run.Day), zap.String("run_id", run.RunID))
		}
	}
	return errors.Join(changed...)
}

// checkResult compares res with the latest run recorded for the same input.
func checkResult(answers *sqlite.Backend, res runner.Result) error {
	prev, err := answers.Latest(res.Day.Number, res.InputDigest)
	if err != nil {
		return err
	}
	if !prev.Matches(res.Answer) {
		return fmt.Errorf("%w: day %d was %s/%s (run %s), now %s/%s",
			puzzle.ErrAnswerChanged, res.Day.Number,
			prev.Part1, prev.Part2, prev.RunID, res.Answer.Part1, res.Answer.Part2)
	}
	return nil
}

// resultJSON is the --json form of one solved day.
type resultJSON struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Part1       string `json:"part1,omitempty"`
	Part2       string `json:"part2,omitempty"`
	InputDigest string `json:"input_digest"`
	DurationMS  int64  `json:"duration_ms"`
}

func (a *app) printResults(w io.Writer, results []runner.Result) error {
	if a.flags.jsonMode {
		out := make([]resultJSON, len(results))
		for i, res := range results {
			out[i] = resultJSON{
				Day:         res.Day.Number,
				Title:       res.Day.Title,
				Part1:       res.Answer.Part1,
				Part2:       res.Answer.Part2,
				InputDigest: res.InputDigest,
				DurationMS:  res.Duration.Milliseconds(),
			}
		}
		return writeJSON(w, out)
	}
	for _, res := range results {
		for k, ans := range []string{res.Answer.Part1, res.Answer.Part2} {
			if ans == "" {
				continue
			}
			fmt.Fprintf(w, "Day %d part %d: %s\n", res.Day.Number, k+1, ans)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
