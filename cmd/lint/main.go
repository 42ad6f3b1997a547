// Package main implements the lint CLI that runs the code-quality pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fenrislabs/lintrun/internal/config"
	"github.com/fenrislabs/lintrun/internal/logging"
	"github.com/fenrislabs/lintrun/internal/orchestrator"
)

var (
	// configPath is the ambient config file override
	configPath string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lint",
	Short: "Run the fixed code-quality pipeline against " + orchestrator.TargetPath + "/",
	Long: `lint runs four code-quality tools against the ` + orchestrator.TargetPath + `/ source tree, in order:
the formatter (black), the import orderer (isort), the style checker
(flake8), and the static type checker (mypy).

The formatter and import orderer are correctness gates: if either fails,
the remaining steps are skipped and lint exits non-zero. Style and type
checker findings are advisory and never fail the run.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runLint,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/lintrun/config.yaml)")
	rootCmd.AddCommand(doctorCmd)
}

// doctorCmd verifies the pipeline tools without running them
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that every pipeline tool resolves on PATH",
	Long: `Check that every pipeline tool can be located on PATH without running
any of them. Exits non-zero if any tool is missing.`,
	RunE: runDoctor,
}

// runLint handles the root command
func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(&cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := logging.WithRunID(cmd.Context(), uuid.NewString())
	logger = logger.With(zap.String("target", orchestrator.TargetPath))

	executor := orchestrator.NewExecutor(orchestrator.ExecRunner{}, logger.Named("orchestrator"))
	_, err = executor.Run(ctx)
	return err
}

// runDoctor handles the doctor command
func runDoctor(cmd *cobra.Command, args []string) error {
	missing := 0
	for _, check := range orchestrator.Doctor() {
		if check.Err != nil {
			missing++
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s MISSING (%v)\n", check.Tool, check.Err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", check.Tool, check.Path)
	}

	if missing > 0 {
		return fmt.Errorf("%d pipeline tool(s) missing", missing)
	}
	return nil
}
