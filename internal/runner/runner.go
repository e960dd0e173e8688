// Package runner reads day inputs and runs their solvers, several days at a
// time when asked.
package runner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/advent/internal/days"
	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Result is the outcome of solving one day.
type Result struct {
	Day         days.Day
	Answer      puzzle.Answer
	InputDigest string
	Duration    time.Duration
}

// Run converts the result into its recorded form.
func (r Result) Run() puzzle.Run {
	return puzzle.Run{
		Day:         r.Day.Number,
		Part1:       r.Answer.Part1,
		Part2:       r.Answer.Part2,
		InputDigest: r.InputDigest,
		DurationMS:  r.Duration.Milliseconds(),
	}
}

// Runner solves days from input files in InputDir.
type Runner struct {
	InputDir string
	// Jobs bounds how many days are solved at once; values below 1 mean 1.
	Jobs int
	// Params returns the tunables for a day; nil means defaults only.
	Params func(d days.Day) puzzle.Params
	Log    *zap.Logger
}

func (r *Runner) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

// InputPath is where the input for d is read from.
func (r *Runner) InputPath(d days.Day) string {
	return filepath.Join(r.InputDir, d.InputName())
}

// Available returns the days whose input file exists.
func (r *Runner) Available(ds []days.Day) []days.Day {
	var out []days.Day
	for _, d := range ds {
		if _, err := os.Stat(r.InputPath(d)); err == nil {
			out = append(out, d)
		}
	}
	return out
}

// Digest identifies an input by the hex SHA-256 of its bytes.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Solve runs one day.
func (r *Runner) Solve(d days.Day) (Result, error) {
	data, err := input.ReadFile(r.InputPath(d))
	if err != nil {
		return Result{}, fmt.Errorf("day %d: %w", d.Number, err)
	}
	env := puzzle.Env{Params: puzzle.ParamMap{}, Log: r.logger().With(zap.Int("day", d.Number))}
	if r.Params != nil {
		env.Params = r.Params(d)
	}

	start := time.Now()
	answer, err := d.Solve(data, env)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("day %d: %w", d.Number, err)
	}
	env.Log.Debug("solved", zap.Duration("elapsed", elapsed))
	return Result{Day: d, Answer: answer, InputDigest: Digest(data), Duration: elapsed}, nil
}

// RunAll solves every day in ds with up to Jobs solvers at once. Results
// come back in the order of ds. The first failure stops days that have not
// started yet and is returned.
func (r *Runner) RunAll(ctx context.Context, ds []days.Day) ([]Result, error) {
	results := make([]Result, len(ds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Jobs, 1))
	for i, d := range ds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Solve(d)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
