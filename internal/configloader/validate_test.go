package configloader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/logsweep/internal/configloader"
	"github.com/yaklabco/logsweep/pkg/config"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*config.Config)
		wantValid bool
	}{
		{
			name:      "defaults are valid",
			mutate:    func(*config.Config) {},
			wantValid: true,
		},
		{
			name:      "dollar and underscore identifiers",
			mutate:    func(c *config.Config) { c.TargetName = "$_log2" },
			wantValid: true,
		},
		{
			name:      "member path rejected",
			mutate:    func(c *config.Config) { c.TargetName = "window.console" },
			wantValid: false,
		},
		{
			name:      "leading digit rejected",
			mutate:    func(c *config.Config) { c.TargetName = "2log" },
			wantValid: false,
		},
		{
			name:      "negative jobs rejected",
			mutate:    func(c *config.Config) { c.Jobs = -1 },
			wantValid: false,
		},
		{
			name:      "unknown format rejected",
			mutate:    func(c *config.Config) { c.Format = "xml" },
			wantValid: false,
		},
		{
			name:      "unknown backup mode rejected",
			mutate:    func(c *config.Config) { c.Backups.Mode = "copy" },
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			tt.mutate(cfg)
			assert.Equal(t, tt.wantValid, configloader.Validate(cfg).Valid())
		})
	}
}
