package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"lookout/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		URL      string        `yaml:"url" mapstructure:"url"`
		Username string        `yaml:"username" mapstructure:"username"`
		Password string        `yaml:"password" mapstructure:"password"`
		Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
	} `yaml:"server" mapstructure:"server"`
	Logs struct {
		Source   string        `yaml:"source" mapstructure:"source"`
		Dir      string        `yaml:"dir" mapstructure:"dir"`
		Pattern  string        `yaml:"pattern" mapstructure:"pattern"`
		PageSize int           `yaml:"page_size" mapstructure:"page_size"`
		Refresh  time.Duration `yaml:"refresh" mapstructure:"refresh"`
		Buffer   int           `yaml:"buffer" mapstructure:"buffer"`
		Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
	} `yaml:"logs" mapstructure:"logs"`
	Events struct {
		Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
		Reconnect time.Duration `yaml:"reconnect" mapstructure:"reconnect"`
	} `yaml:"events" mapstructure:"events"`
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
		File   string `yaml:"file" mapstructure:"file"`
	} `yaml:"logging" mapstructure:"logging"`
	Version int `yaml:"version" mapstructure:"version"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Version: 1,
	}

	cfg.Server.URL = DefaultServerURL
	cfg.Server.Timeout = DefaultTimeout

	cfg.Logs.Source = SourceHTTP
	cfg.Logs.Pattern = DefaultPattern
	cfg.Logs.PageSize = DefaultPageSize
	cfg.Logs.Refresh = DefaultRefresh
	cfg.Logs.Buffer = DefaultLogsBuffer
	cfg.Logs.Debounce = DefaultDebounce

	cfg.Events.Enabled = true
	cfg.Events.Reconnect = DefaultReconnect

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat
	cfg.Logging.File = DefaultLogFile

	return cfg
}

// Load loads the configuration from lookout.yaml in the working directory
func Load() (*Config, error) {
	return LoadFrom(ConfigFile, EnvFile)
}

// LoadFrom loads the configuration from the given config and env files, both optional
func LoadFrom(path, envPath string) (*Config, error) {
	cfg := DefaultConfig()

	if err := loadEnv(envPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	v := viper.New()
	v.SetConfigType("yaml")

	bindEnv(v)

	if len(data) > 0 {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToReadConfig
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// loadEnv loads variables from an env file without overriding the real environment
func loadEnv(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToLoadEnv, err)
	}

	return nil
}

// bindEnv maps environment variables onto config keys
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("server.url", EnvServer)
	_ = v.BindEnv("server.username", EnvUsername, EnvWebUsername)
	_ = v.BindEnv("server.password", EnvPassword, EnvWebPassword)
}

// normalize trims user supplied strings
func (c *Config) normalize() {
	c.Server.URL = strings.TrimRight(strings.TrimSpace(c.Server.URL), "/")
	c.Logs.Source = strings.ToLower(strings.TrimSpace(c.Logs.Source))
	c.Logs.Dir = strings.TrimSpace(c.Logs.Dir)
	c.Logs.Pattern = strings.TrimSpace(c.Logs.Pattern)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateLogs(); err != nil {
		return err
	}

	if err := c.validateEvents(); err != nil {
		return err
	}

	return nil
}

// validateServer validates server settings
func (c *Config) validateServer() error {
	if c.Server.URL == "" {
		return errors.ErrServerURLRequired
	}

	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidServerURL, c.Server.URL)
	}

	if c.Server.Timeout <= 0 {
		return errors.ErrInvalidRequestTimeout
	}

	return nil
}

// validateLogs validates logs settings
func (c *Config) validateLogs() error {
	switch c.Logs.Source {
	case SourceHTTP:
	case SourceFile:
		if c.Logs.Dir == "" {
			return errors.ErrLogsDirRequired
		}
	default:
		return fmt.Errorf("%w: '%s' (must be 'http' or 'file')", errors.ErrInvalidLogsSource, c.Logs.Source)
	}

	if !strings.Contains(c.Logs.Pattern, TaskIDPlaceholder) {
		return errors.ErrInvalidLogsPattern
	}

	if c.Logs.PageSize <= 0 || c.Logs.PageSize > MaxPageSize {
		return errors.ErrInvalidPageSize
	}

	if c.Logs.Refresh <= 0 {
		return errors.ErrInvalidRefresh
	}

	if c.Logs.Buffer <= 0 {
		return errors.ErrInvalidLogsBuffer
	}

	return nil
}

// validateEvents validates event stream settings; a disabled stream never reconnects
func (c *Config) validateEvents() error {
	if c.Events.Enabled && c.Events.Reconnect <= 0 {
		return errors.ErrInvalidReconnect
	}

	return nil
}

// EventsURL derives the websocket endpoint from the server url
func (c *Config) EventsURL() string {
	u, err := url.Parse(c.Server.URL)
	if err != nil {
		return ""
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}

	u.Path = strings.TrimRight(u.Path, "/") + EventsPath

	return u.String()
}

// HasCredentials reports whether basic auth credentials are configured
func (c *Config) HasCredentials() bool {
	return c.Server.Username != "" && c.Server.Password != ""
}
