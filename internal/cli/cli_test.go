package cli_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/logsweep/internal/cli"
	"github.com/yaklabco/logsweep/pkg/fsutil"
	"github.com/yaklabco/logsweep/pkg/runner"
)

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}
	if cmd.Use != "logsweep" {
		t.Errorf("Use = %q, want logsweep", cmd.Use)
	}
	if cmd.Short == "" || cmd.Long == "" {
		t.Error("expected Short and Long descriptions to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	for _, name := range []string{"sweep", "restore", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("subcommand %q not found: %v", name, err)
			continue
		}
		if subCmd.Name() != name {
			t.Errorf("subcommand name = %q, want %q", subCmd.Name(), name)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	for _, flagName := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("global flag %q missing", flagName)
		}
	}
}

func TestSweepCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	sweepCmd, _, err := cmd.Find([]string{"sweep"})
	if err != nil {
		t.Fatalf("sweep command not found: %v", err)
	}

	expectedFlags := []string{
		"name",
		"comment",
		"dry-run",
		"format",
		"jobs",
		"ignore",
		"include",
		"no-backups",
		"diff",
		"fail-fast",
	}

	for _, flagName := range expectedFlags {
		if sweepCmd.Flags().Lookup(flagName) == nil {
			t.Errorf("flag %q missing on sweep command", flagName)
		}
	}
}

func TestRestoreCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	restoreCmd, _, err := cmd.Find([]string{"restore"})
	if err != nil {
		t.Fatalf("restore command not found: %v", err)
	}

	if restoreCmd.Flags().Lookup("keep") == nil {
		t.Error("flag \"keep\" missing on restore command")
	}
}

func TestInitCommand(t *testing.T) {
	// Chdir'ing tests cannot run in parallel.
	t.Run("creates config file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		cmd := cli.NewRootCommand(testBuildInfo())
		cmd.SetArgs([]string{"init"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("init failed: %v", err)
		}

		content, err := os.ReadFile(filepath.Join(dir, ".logsweep.yml"))
		if err != nil {
			t.Fatalf("config file not created: %v", err)
		}
		if len(content) == 0 {
			t.Error("config file is empty")
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		path := filepath.Join(dir, ".logsweep.yml")
		if err := os.WriteFile(path, []byte("target_name: mine\n"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cmd := cli.NewRootCommand(testBuildInfo())
		cmd.SetArgs([]string{"init"})
		if err := cmd.Execute(); err == nil {
			t.Fatal("expected error for existing file")
		}

		content, _ := os.ReadFile(path)
		if string(content) != "target_name: mine\n" {
			t.Error("existing file was overwritten")
		}
	})

	t.Run("force overwrites", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		path := filepath.Join(dir, ".logsweep.yml")
		if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cmd := cli.NewRootCommand(testBuildInfo())
		cmd.SetArgs([]string{"init", "--force"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("init --force failed: %v", err)
		}

		content, _ := os.ReadFile(path)
		if string(content) == "old\n" {
			t.Error("file was not overwritten")
		}
	})

	t.Run("custom output path", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		cmd := cli.NewRootCommand(testBuildInfo())
		cmd.SetArgs([]string{"init", "--output", "custom.yml"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("init --output failed: %v", err)
		}

		if _, err := os.Stat(filepath.Join(dir, "custom.yml")); err != nil {
			t.Errorf("custom output not created: %v", err)
		}
	})
}

func TestRestoreCommand(t *testing.T) {
	t.Run("restores and removes backup", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		path := filepath.Join(dir, "app.js")
		backup := path + fsutil.BackupSuffix
		if err := os.WriteFile(path, []byte("keep();\n"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(backup, []byte("console.log(1);\nkeep();\n"), 0o644); err != nil {
			t.Fatalf("setup backup: %v", err)
		}

		cmd := cli.NewRootCommand(testBuildInfo())
		cmd.SetArgs([]string{"restore"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("restore failed: %v", err)
		}

		content, _ := os.ReadFile(path)
		if string(content) != "console.log(1);\nkeep();\n" {
			t.Errorf("content = %q, want original restored", content)
		}
		if _, err := os.Stat(backup); err == nil {
			t.Error("backup still exists after restore")
		}
	})

	t.Run("keep flag preserves backup", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		path := filepath.Join(dir, "app.js")
		backup := path + fsutil.BackupSuffix
		if err := os.WriteFile(path, []byte("keep();\n"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(backup, []byte("original\n"), 0o644); err != nil {
			t.Fatalf("setup backup: %v", err)
		}

		cmd := cli.NewRootCommand(testBuildInfo())
		cmd.SetArgs([]string{"restore", "--keep"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("restore --keep failed: %v", err)
		}

		if _, err := os.Stat(backup); err != nil {
			t.Errorf("backup removed despite --keep: %v", err)
		}
	})
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "files failed", err: cli.ErrFilesFailed, want: cli.ExitFileErrors},
		{name: "usage", err: errors.Join(cli.ErrUsage, errors.New("unknown flag")), want: cli.ExitInvalidUsage},
		{name: "config", err: errors.Join(cli.ErrConfigLoad, errors.New("bad yaml")), want: cli.ExitConfigError},
		{name: "io", err: fsutil.ErrNotFound, want: cli.ExitIOError},
		{name: "anything else", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		want   int
	}{
		{name: "nil result", result: nil, want: cli.ExitSuccess},
		{name: "clean run", result: &runner.Result{}, want: cli.ExitSuccess},
		{
			name:   "file errors",
			result: &runner.Result{Stats: runner.Stats{FilesErrored: 2}},
			want:   cli.ExitFileErrors,
		},
		{
			name:   "run errors",
			result: &runner.Result{Errors: []error{errors.New("boom")}},
			want:   cli.ExitFileErrors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCodeFromResult(tt.result); got != tt.want {
				t.Errorf("ExitCodeFromResult() = %d, want %d", got, tt.want)
			}
		})
	}
}
