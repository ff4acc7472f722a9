package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lookout/internal/app/errors"
)

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultServerURL, cfg.Server.URL)
	assert.Equal(t, DefaultTimeout, cfg.Server.Timeout)
	assert.Equal(t, SourceHTTP, cfg.Logs.Source)
	assert.Equal(t, DefaultPageSize, cfg.Logs.PageSize)
	assert.Equal(t, 2*time.Second, cfg.Logs.Refresh)
	assert.Equal(t, DefaultReconnect, cfg.Events.Reconnect)
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, 1, cfg.Version)
	assert.NoError(t, cfg.Validate())
}

func Test_LoadFrom(t *testing.T) {
	tests := []struct {
		name    string
		content string
		write   bool
		error   error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:  "no config file found - uses default",
			write: false,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultServerURL, cfg.Server.URL)
			},
		},
		{
			name:  "valid config file",
			write: true,
			content: `version: 1
server:
  url: http://monitor.local:8000/
  timeout: 5s
logs:
  source: FILE
  dir: /var/log/monitor
  page_size: 100
  refresh: 1s
logging:
  level: debug
  format: json
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "http://monitor.local:8000", cfg.Server.URL)
				assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
				assert.Equal(t, SourceFile, cfg.Logs.Source)
				assert.Equal(t, "/var/log/monitor", cfg.Logs.Dir)
				assert.Equal(t, 100, cfg.Logs.PageSize)
				assert.Equal(t, time.Second, cfg.Logs.Refresh)
				assert.Equal(t, DefaultPattern, cfg.Logs.Pattern)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name:    "invalid yaml",
			write:   true,
			content: "server: [unclosed",
			error:   errors.ErrFailedToReadConfig,
		},
		{
			name:    "invalid yaml structure for unmarshal",
			write:   true,
			content: "logs: \"this should be a map not a string\"\n",
			error:   errors.ErrFailedToParseConfig,
		},
		{
			name:    "zero reconnect",
			write:   true,
			content: "events:\n  reconnect: 0s\n",
			error:   errors.ErrInvalidConfig,
		},
		{
			name:    "file source without dir",
			write:   true,
			content: "logs:\n  source: file\n",
			error:   errors.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, ConfigFile)

			if tt.write {
				assert.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			}

			cfg, err := LoadFrom(path, "")

			if tt.error != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.error)
				assert.Nil(t, cfg)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, cfg)

			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func Test_LoadFrom_PermissionDenied(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores file permissions")
	}

	path := filepath.Join(t.TempDir(), ConfigFile)
	assert.NoError(t, os.WriteFile(path, []byte("version: 1"), 0o000))

	cfg, err := LoadFrom(path, "")
	assert.Equal(t, errors.ErrFailedToReadConfig, err)
	assert.Nil(t, cfg)
}

func Test_LoadFrom_Env(t *testing.T) {
	t.Run("environment overrides credentials", func(t *testing.T) {
		t.Setenv(EnvUsername, "alice")
		t.Setenv(EnvPassword, "secret")

		cfg, err := LoadFrom(filepath.Join(t.TempDir(), ConfigFile), "")
		assert.NoError(t, err)
		assert.Equal(t, "alice", cfg.Server.Username)
		assert.Equal(t, "secret", cfg.Server.Password)
		assert.True(t, cfg.HasCredentials())
	})

	t.Run("env file supplies monitor credentials", func(t *testing.T) {
		for _, key := range []string{EnvUsername, EnvPassword, EnvWebUsername, EnvWebPassword} {
			os.Unsetenv(key)
		}

		t.Cleanup(func() {
			os.Unsetenv(EnvWebUsername)
			os.Unsetenv(EnvWebPassword)
		})

		dir := t.TempDir()
		envPath := filepath.Join(dir, EnvFile)
		assert.NoError(t, os.WriteFile(envPath, []byte("WEB_USERNAME=admin\nWEB_PASSWORD=admin123\n"), 0o600))

		cfg, err := LoadFrom(filepath.Join(dir, ConfigFile), envPath)
		assert.NoError(t, err)
		assert.Equal(t, "admin", cfg.Server.Username)
		assert.Equal(t, "admin123", cfg.Server.Password)
	})
}

func Test_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *Config)
		error  error
	}{
		{name: "defaults", modify: func(cfg *Config) {}},
		{name: "empty url", modify: func(cfg *Config) { cfg.Server.URL = "" }, error: errors.ErrServerURLRequired},
		{name: "url without scheme", modify: func(cfg *Config) { cfg.Server.URL = "monitor:8000" }, error: errors.ErrInvalidServerURL},
		{name: "zero timeout", modify: func(cfg *Config) { cfg.Server.Timeout = 0 }, error: errors.ErrInvalidRequestTimeout},
		{name: "unknown source", modify: func(cfg *Config) { cfg.Logs.Source = "s3" }, error: errors.ErrInvalidLogsSource},
		{name: "file source needs dir", modify: func(cfg *Config) { cfg.Logs.Source = SourceFile }, error: errors.ErrLogsDirRequired},
		{name: "pattern without id", modify: func(cfg *Config) { cfg.Logs.Pattern = "*.log" }, error: errors.ErrInvalidLogsPattern},
		{name: "page size too large", modify: func(cfg *Config) { cfg.Logs.PageSize = MaxPageSize + 1 }, error: errors.ErrInvalidPageSize},
		{name: "zero refresh", modify: func(cfg *Config) { cfg.Logs.Refresh = 0 }, error: errors.ErrInvalidRefresh},
		{name: "zero buffer", modify: func(cfg *Config) { cfg.Logs.Buffer = 0 }, error: errors.ErrInvalidLogsBuffer},
		{name: "zero reconnect", modify: func(cfg *Config) { cfg.Events.Reconnect = 0 }, error: errors.ErrInvalidReconnect},
		{name: "negative reconnect", modify: func(cfg *Config) { cfg.Events.Reconnect = -time.Second }, error: errors.ErrInvalidReconnect},
		{name: "reconnect ignored when events disabled", modify: func(cfg *Config) {
			cfg.Events.Enabled = false
			cfg.Events.Reconnect = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.error == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.error)
		})
	}
}

func Test_EventsURL(t *testing.T) {
	tests := []struct {
		name     string
		server   string
		expected string
	}{
		{name: "http", server: "http://127.0.0.1:8000", expected: "ws://127.0.0.1:8000/ws"},
		{name: "https with path", server: "https://monitor.example.com/panel", expected: "wss://monitor.example.com/panel/ws"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Server.URL = tt.server
			assert.Equal(t, tt.expected, cfg.EventsURL())
		})
	}
}
