package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/logsweep/internal/configloader"
	"github.com/yaklabco/logsweep/internal/logging"
	"github.com/yaklabco/logsweep/pkg/config"
	"github.com/yaklabco/logsweep/pkg/reporter"
	"github.com/yaklabco/logsweep/pkg/runner"
)

// ErrFilesFailed is returned when some files could not be processed.
var ErrFilesFailed = errors.New("some files failed")

type sweepFlags struct {
	format    string
	ignore    []string
	include   []string
	showDiffs bool
	failFast  bool
}

func newSweepCommand() *cobra.Command {
	var cfg config.Config
	flags := &sweepFlags{}

	cmd := &cobra.Command{
		Use:   "sweep [paths...]",
		Short: "Remove or comment out diagnostic statements",
		Long:  sweepLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, args, &cfg, flags)
		},
	}

	addSweepFlags(cmd, &cfg, flags)

	return cmd
}

const sweepLongDescription = `Remove standalone diagnostic statements from source files.

By default, sweeps all .js, .jsx, .mjs, .cjs, .ts and .tsx files in the
current directory and subdirectories. Specify paths to sweep specific files
or directories. node_modules and hidden directories are never traversed.

Examples:
  logsweep sweep                     # Sweep current directory
  logsweep sweep src/                # Sweep src directory
  logsweep sweep app.js              # Sweep single file
  logsweep sweep --comment           # Comment out instead of removing
  logsweep sweep --dry-run           # Show changes without applying
  logsweep sweep --name logger       # Sweep calls on "logger" instead
  logsweep sweep --format json       # Output as JSON for CI`

func runSweep(cmd *cobra.Command, args []string, cfg *config.Config, flags *sweepFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore
	cfg.Include = flags.include

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(ErrConfigLoad, err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPaths, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldTarget, finalCfg.EffectiveTargetName(),
		logging.FieldComment, finalCfg.Comment,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	sweepRunner := runner.New()

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   finalCfg.EffectiveExtensions(),
		IncludeGlobs: finalCfg.Include,
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		FailFast:     flags.failFast,
		Config:       finalCfg,
	}

	logger.Debug("starting sweep run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := sweepRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("sweep run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      finalCfg.Format,
		Color:       colorMode,
		ShowDiffs:   flags.showDiffs,
		ShowSummary: true,
		DryRun:      finalCfg.DryRun,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrFilesFailed
	}

	return nil
}

func addSweepFlags(cmd *cobra.Command, cfg *config.Config, flags *sweepFlags) {
	cmd.Flags().StringVar(&cfg.TargetName, "name", "", "diagnostic object to sweep (default: console)")
	cmd.Flags().BoolVar(&cfg.Comment, "comment", false, "convert statements to comments instead of removing them")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show changes without applying them")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "glob patterns to restrict processing to")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when rewriting")
	cmd.Flags().BoolVar(&flags.showDiffs, "diff", false, "show unified diffs for rewritten files")
	cmd.Flags().BoolVar(&flags.failFast, "fail-fast", false, "stop processing after the first file error")
}
