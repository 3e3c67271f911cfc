// Package config defines core configuration types for logsweep.
// These types are pure data structures with no dependency on any config loader.
package config

// DefaultTargetName is the conventional diagnostic object whose calls are swept.
const DefaultTargetName = "console"

// BackupsConfig controls backup behavior when rewriting files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// OutputFormat specifies the output format for run results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognized.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for logsweep.
type Config struct {
	// TargetName is the identifier whose member calls are rewritten.
	TargetName string `yaml:"target_name"`

	// Comment converts matched statements to comments instead of removing them.
	Comment bool `yaml:"comment"`

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered source files.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// Include contains glob patterns to restrict processing to.
	Include []string `yaml:"include"`

	// Backups configures backup behavior when rewriting.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// DryRun computes rewrites without writing files.
	DryRun bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers (0 = auto).
	Jobs int `yaml:"-"`

	// NoBackups disables backup creation when rewriting.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		TargetName: DefaultTargetName,
		Extensions: DefaultExtensions(),
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format: FormatText,
	}
}

// DefaultExtensions returns the default set of source file extensions.
func DefaultExtensions() []string {
	return []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx"}
}

// EffectiveTargetName returns the target name, defaulting if empty.
func (c *Config) EffectiveTargetName() string {
	if c == nil || c.TargetName == "" {
		return DefaultTargetName
	}
	return c.TargetName
}

// EffectiveExtensions returns the extensions to use, defaulting if empty.
func (c *Config) EffectiveExtensions() []string {
	if c == nil || len(c.Extensions) == 0 {
		return DefaultExtensions()
	}
	return c.Extensions
}
