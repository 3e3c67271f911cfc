package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/logsweep/internal/logging"
	"github.com/yaklabco/logsweep/pkg/fsutil"
)

type restoreFlags struct {
	keep bool
}

func newRestoreCommand() *cobra.Command {
	flags := &restoreFlags{}

	cmd := &cobra.Command{
		Use:   "restore [paths...]",
		Short: "Restore files from sidecar backups",
		Long: `Restore original file content from .logsweep.bak sidecar backups.

Backups are created automatically before each in-place rewrite. Restoring
replaces the current file content with the backup and removes the backup
unless --keep is given.

Examples:
  logsweep restore                # Restore everything under the current directory
  logsweep restore src/app.js     # Restore a single file
  logsweep restore --keep src/    # Restore but keep the backup files`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.keep, "keep", false, "keep backup files after restoring")

	return cmd
}

func runRestore(cmd *cobra.Command, args []string, flags *restoreFlags) error {
	logger := logging.NewInteractive()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	candidates, err := findBackups(ctx, args, workDir)
	if err != nil {
		return err
	}

	if len(candidates) == 0 {
		logger.Info("no backups found")
		return nil
	}

	var restored, failed int
	for _, path := range candidates {
		ok, err := fsutil.RestoreBackup(ctx, path, fsutil.BackupModeSidecar)
		if err != nil {
			logger.Error("restore failed", logging.FieldPath, path, logging.FieldError, err)
			failed++
			continue
		}
		if !ok {
			continue
		}
		restored++
		logger.Info("restored", logging.FieldPath, path)

		if !flags.keep {
			if _, err := fsutil.RemoveBackup(path, fsutil.BackupModeSidecar); err != nil {
				logger.Warn("could not remove backup", logging.FieldPath, path, logging.FieldError, err)
			}
		}
	}

	logger.Info("restore complete", logging.FieldFiles, restored)

	if failed > 0 {
		return errors.New("some files could not be restored")
	}
	return nil
}

// findBackups resolves the paths whose sidecar backups should be restored.
// Directory arguments are walked looking for backup files; file arguments
// may name either the original or its backup.
func findBackups(ctx context.Context, args []string, workDir string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var originals []string
	for _, arg := range args {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("restore cancelled: %w", ctx.Err())
		default:
		}

		path := arg
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			original := strings.TrimSuffix(path, fsutil.BackupSuffix)
			if fsutil.BackupExists(original, fsutil.BackupModeSidecar) {
				originals = append(originals, original)
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				if os.IsPermission(walkErr) {
					return nil
				}
				return walkErr
			}
			if entry.IsDir() {
				if p != path && strings.HasPrefix(entry.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(p, fsutil.BackupSuffix) {
				originals = append(originals, strings.TrimSuffix(p, fsutil.BackupSuffix))
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}

	sort.Strings(originals)
	return dedupe(originals), nil
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var out []string
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
