package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/logsweep/internal/configloader"
	"github.com/yaklabco/logsweep/pkg/config"
)

// projectDir creates a temp directory marked as a VCS root so upward
// config search never escapes into the test machine's real tree.
func projectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func writeProjectConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".logsweep.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// isolatedLoadOptions keeps the loader away from any real system or user
// config present on the machine running the tests.
func isolatedLoadOptions(dir string) configloader.LoadOptions {
	return configloader.LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := projectDir(t)

	result, err := configloader.Load(context.Background(), isolatedLoadOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, "console", result.Config.TargetName)
	assert.Equal(t, config.DefaultExtensions(), result.Config.Extensions)
	assert.True(t, result.Config.Backups.Enabled)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	dir := projectDir(t)
	path := writeProjectConfig(t, dir, "target_name: logger\ncomment: true\n")

	result, err := configloader.Load(context.Background(), isolatedLoadOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, "logger", result.Config.TargetName)
	assert.True(t, result.Config.Comment)
	assert.Equal(t, []string{path}, result.LoadedFrom)
}

func TestLoad_ProjectConfigFoundUpward(t *testing.T) {
	dir := projectDir(t)
	path := writeProjectConfig(t, dir, "target_name: logger\n")

	nested := filepath.Join(dir, "src", "components")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	opts := isolatedLoadOptions(nested)
	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "logger", result.Config.TargetName)
	assert.Equal(t, path, result.Paths.Project)
}

func TestLoad_SearchStopsAtVCSRoot(t *testing.T) {
	outer := t.TempDir()
	writeProjectConfig(t, outer, "target_name: outer\n")

	// The inner project is its own VCS root; the outer config must not
	// leak into it.
	inner := filepath.Join(outer, "inner")
	require.NoError(t, os.MkdirAll(filepath.Join(inner, ".git"), 0o755))

	result, err := configloader.Load(context.Background(), isolatedLoadOptions(inner))
	require.NoError(t, err)

	assert.Equal(t, "console", result.Config.TargetName)
	assert.Empty(t, result.Paths.Project)
}

func TestLoad_ExplicitPathWinsOverProject(t *testing.T) {
	dir := projectDir(t)
	writeProjectConfig(t, dir, "target_name: project\njobs: 0\n")

	explicit := filepath.Join(dir, "ci.yml")
	require.NoError(t, os.WriteFile(explicit, []byte("target_name: explicit\n"), 0o644))

	opts := isolatedLoadOptions(dir)
	opts.ExplicitPath = explicit

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "explicit", result.Config.TargetName)
	assert.Equal(t, explicit, result.LoadedFrom[len(result.LoadedFrom)-1])
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	dir := projectDir(t)

	opts := isolatedLoadOptions(dir)
	opts.ExplicitPath = filepath.Join(dir, "absent.yml")

	_, err := configloader.Load(context.Background(), opts)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesProject(t *testing.T) {
	dir := projectDir(t)
	writeProjectConfig(t, dir, "target_name: project\n")

	t.Setenv("LOGSWEEP_TARGET_NAME", "fromenv")
	t.Setenv("LOGSWEEP_JOBS", "3")
	t.Setenv("LOGSWEEP_IGNORE", "dist/**, vendor/**")

	opts := isolatedLoadOptions(dir)
	opts.IgnoreEnv = false

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "fromenv", result.Config.TargetName)
	assert.Equal(t, 3, result.Config.Jobs)
	assert.Equal(t, []string{"dist/**", "vendor/**"}, result.Config.Ignore)
}

func TestLoad_CLIWinsOverEnv(t *testing.T) {
	dir := projectDir(t)

	t.Setenv("LOGSWEEP_TARGET_NAME", "fromenv")

	opts := isolatedLoadOptions(dir)
	opts.IgnoreEnv = false
	opts.CLIConfig = &config.Config{TargetName: "fromcli"}

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "fromcli", result.Config.TargetName)
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	dir := projectDir(t)

	t.Setenv("LOGSWEEP_JOBS", "lots")

	opts := isolatedLoadOptions(dir)
	opts.IgnoreEnv = false

	_, err := configloader.Load(context.Background(), opts)
	assert.Error(t, err)
}

func TestLoad_ValidationRejectsBadTarget(t *testing.T) {
	dir := projectDir(t)
	writeProjectConfig(t, dir, "target_name: window.console\n")

	_, err := configloader.Load(context.Background(), isolatedLoadOptions(dir))
	require.Error(t, err)

	var verr *configloader.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "target_name", verr.Field)
}

func TestLoad_ExtensionWarning(t *testing.T) {
	dir := projectDir(t)
	writeProjectConfig(t, dir, "extensions:\n  - js\n")

	result, err := configloader.Load(context.Background(), isolatedLoadOptions(dir))
	require.NoError(t, err)
	assert.NotEmpty(t, result.Warnings)
}
