package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/logsweep/pkg/config"
)

func TestNewConfig(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, "console", cfg.TargetName)
	assert.Equal(t, config.DefaultExtensions(), cfg.Extensions)
	assert.True(t, cfg.Backups.Enabled)
	assert.Equal(t, "sidecar", cfg.Backups.Mode)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.False(t, cfg.Comment)
	assert.False(t, cfg.DryRun)
}

func TestOutputFormatIsValid(t *testing.T) {
	assert.True(t, config.FormatText.IsValid())
	assert.True(t, config.FormatJSON.IsValid())
	assert.False(t, config.OutputFormat("xml").IsValid())
	assert.False(t, config.OutputFormat("").IsValid())
}

func TestEffectiveTargetName(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want string
	}{
		{name: "nil config", cfg: nil, want: "console"},
		{name: "empty name", cfg: &config.Config{}, want: "console"},
		{name: "custom name", cfg: &config.Config{TargetName: "logger"}, want: "logger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.EffectiveTargetName())
		})
	}
}

func TestEffectiveExtensions(t *testing.T) {
	var nilCfg *config.Config
	assert.Equal(t, config.DefaultExtensions(), nilCfg.EffectiveExtensions())

	empty := &config.Config{}
	assert.Equal(t, config.DefaultExtensions(), empty.EffectiveExtensions())

	custom := &config.Config{Extensions: []string{".ts"}}
	assert.Equal(t, []string{".ts"}, custom.EffectiveExtensions())
}

func TestTemplateParses(t *testing.T) {
	cfg, err := config.FromYAML(config.Template())
	assert.NoError(t, err)
	assert.Equal(t, "console", cfg.TargetName)
	assert.Equal(t, config.DefaultExtensions(), cfg.Extensions)
	assert.True(t, cfg.Backups.Enabled)
}
