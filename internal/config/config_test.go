package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procman/internal/app/errors"
)

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, DefaultIntervalSeconds, cfg.Monitor.Interval)
	assert.Equal(t, DefaultSortBy, cfg.Monitor.SortBy)
	assert.Equal(t, DefaultDisplayRows, cfg.Display.Rows)
	assert.Equal(t, DefaultEventLogFile, cfg.EventLog.File)
}

func Test_LoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func Test_LoadFile(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, cfg *Config)
		wantErr error
	}{
		{
			name: "overrides defaults",
			yaml: "monitor:\n  interval: 10\n  sort_by: memory\ndisplay:\n  rows: 15\nlogging:\n  level: debug\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 10, cfg.Monitor.Interval)
				assert.Equal(t, "memory", cfg.Monitor.SortBy)
				assert.Equal(t, 15, cfg.Display.Rows)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, DefaultEventLogFile, cfg.EventLog.File)
			},
		},
		{
			name:    "invalid interval",
			yaml:    "monitor:\n  interval: -1\n",
			wantErr: errors.ErrInvalidConfig,
		},
		{
			name:    "invalid sort criterion",
			yaml:    "monitor:\n  sort_by: pid\n",
			wantErr: errors.ErrInvalidConfig,
		},
		{
			name:    "invalid display rows",
			yaml:    "display:\n  rows: 0\n",
			wantErr: errors.ErrInvalidConfig,
		},
		{
			name:    "malformed yaml",
			yaml:    "monitor: [",
			wantErr: errors.ErrFailedToReadConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := LoadFile(path)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func Test_Validate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Monitor.SortBy = "memory"
	assert.NoError(t, cfg.Validate())

	cfg.Monitor.Interval = 0
	assert.ErrorIs(t, cfg.Validate(), errors.ErrInvalidInterval)
}

func Test_WriteScaffold(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	require.NoError(t, WriteScaffold(path))

	// scaffold must round-trip through Load unchanged
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// second write refuses to clobber
	assert.Error(t, WriteScaffold(path))
}
