// Package cli implements the advent command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/advent/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	inputDir  string
	jsonMode  bool
	verbose   bool
}

// app is the state shared by one invocation of the root command.
type app struct {
	flags rootFlags
	cfg   *viper.Viper
	log   *zap.Logger
}

// NewRootCmd creates the top-level "advent" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "advent",
		Short: "Advent of Code 2020 puzzle solvers",
		Long: "advent solves Advent of Code 2020 puzzles from input files and keeps\n" +
			"a local log of answers so later runs can be checked against it.",
		// Errors are printed once by Execute.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/advent)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "answer log directory (default: $(CWD)/.advent-db)")
	pf.StringVar(&a.flags.inputDir, "input-dir", "", "puzzle input directory (default: $(CWD)/assets/days)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log solver progress to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newRunCmd(a))
	root.AddCommand(newAllCmd(a))
	root.AddCommand(newHistoryCmd(a))

	return root
}

// setup builds the logger and loads config.yaml.
func (a *app) setup(cmd *cobra.Command) error {
	log := newLogger(a.flags.verbose, cmd.ErrOrStderr())
	a.log = log
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return systemError{fmt.Errorf("resolve config dir: %w", err)}
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return systemError{err}
	}
	if f := cmd.Flags().Lookup(flagJobs); f != nil {
		if err := cfg.BindPFlag(cfgKeyJobs, f); err != nil {
			return systemError{err}
		}
	}
	a.cfg = cfg
	log.Debug("config loaded", zap.String("config_dir", configDir))
	return nil
}

// newLogger writes production-encoded logs to w, at debug level when verbose.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level))
}

func (a *app) dataDir() (string, error) {
	return paths.ResolveDataDir(a.flags.dataDir, a.cfg.GetString(cfgKeyDataDir))
}

func (a *app) inputDir() (string, error) {
	return paths.ResolveInputDir(a.flags.inputDir, a.cfg.GetString(cfgKeyInputDir))
}

// systemError marks failures of the environment (I/O, config, answer log)
// rather than of the puzzle input or the command line.
type systemError struct{ err error }

func (e systemError) Error() string { return e.err.Error() }
func (e systemError) Unwrap() error { return e.err }

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var sys systemError
	var pathErr *fs.PathError
	if errors.As(err, &sys) || errors.As(err, &pathErr) {
		return exitSysError
	}
	return exitUserError
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "advent:", err)
	}
	os.Exit(exitCode(err))
}
