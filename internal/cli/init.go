package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/advent/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration, answer log and input directories",
		Long: "Create the configuration directory with a default config.yaml, the answer\n" +
			"log directory with an empty runs.jsonl, and the input directory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// config.yaml is written by the root command's setup.
			configDir, err := paths.ResolveConfigDir(a.flags.configDir)
			if err != nil {
				return systemError{err}
			}

			answers, err := a.attachLog()
			if err != nil {
				return err
			}
			if err := answers.Detach(); err != nil {
				return systemError{fmt.Errorf("finalize answer log: %w", err)}
			}

			dataDir, err := a.dataDir()
			if err != nil {
				return systemError{err}
			}
			inputDir, err := a.inputDir()
			if err != nil {
				return systemError{err}
			}
			if err := os.MkdirAll(inputDir, 0o755); err != nil {
				return systemError{fmt.Errorf("create input directory: %w", err)}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "advent initialized")
			fmt.Fprintln(out, "  config:", configDir)
			fmt.Fprintln(out, "  data:  ", dataDir)
			fmt.Fprintln(out, "  input: ", inputDir)
			return nil
		},
	}
}
