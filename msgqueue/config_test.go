package msgqueue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Config
		wantErr error
	}{
		{
			name: "empty document uses defaults",
			yaml: "",
			want: DefaultConfig(),
		},
		{
			name: "full document",
			yaml: "name: inbox\ncapacity: 16\nmode: spsc\nlog_level: debug\n",
			want: Config{Name: "inbox", Capacity: 16, Mode: api.ModeSPSC, LogLevel: "debug"},
		},
		{
			name: "partial document keeps other defaults",
			yaml: "capacity: 8\n",
			want: Config{Name: DefaultName, Capacity: 8, Mode: DefaultMode, LogLevel: DefaultLogLevel},
		},
		{
			name:    "zero capacity",
			yaml:    "capacity: 0\n",
			wantErr: api.ErrInvalidCapacity,
		},
		{
			name:    "unknown mode",
			yaml:    "mode: mpmc\n",
			wantErr: api.ErrInvalidArgument,
		},
		{
			name:    "bad log level",
			yaml:    "log_level: loud\n",
			wantErr: api.ErrInvalidArgument,
		},
		{
			name:    "empty name",
			yaml:    "name: \"\"\n",
			wantErr: api.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.yaml))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestParseConfig_InvalidYAML(t *testing.T) {
	_, err := ParseConfig([]byte("capacity: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing queue config YAML")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: outbox\ncapacity: 4\nmode: locked\n"), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "outbox", cfg.Name)
	assert.Equal(t, 4, cfg.Capacity)
	assert.Equal(t, api.ModeLocked, cfg.Mode)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_Level(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, Config{}.Level())
	assert.Equal(t, zerolog.WarnLevel, Config{LogLevel: "warn"}.Level())
	assert.Equal(t, zerolog.InfoLevel, Config{LogLevel: "nonsense"}.Level())
}

func TestConfig_AsMap(t *testing.T) {
	m := DefaultConfig().AsMap()
	assert.Equal(t, DefaultCapacity, m[KeyCapacity])
	assert.Equal(t, DefaultLogLevel, m[KeyLogLevel])
	assert.Equal(t, "basic", m["mode"])
}
