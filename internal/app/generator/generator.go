package generator

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"lookout/internal/app/errors"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

const header = `# lookout configuration
# Credentials are read from .env (LOOKOUT_USERNAME, LOOKOUT_PASSWORD) and never written here.
`

// Options contains the configuration for generating lookout.yaml
type Options struct {
	Path      string
	ServerURL string
	Source    string
	Dir       string
}

// DefaultOptions returns sensible defaults for generation
func DefaultOptions() Options {
	return Options{
		Path:      config.ConfigFile,
		ServerURL: config.DefaultServerURL,
		Source:    config.SourceHTTP,
	}
}

// document is the on-disk shape of lookout.yaml; durations are written the way people type them
type document struct {
	Version int `yaml:"version"`
	Server  struct {
		URL     string `yaml:"url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"server"`
	Logs struct {
		Source   string `yaml:"source"`
		Dir      string `yaml:"dir,omitempty"`
		Pattern  string `yaml:"pattern"`
		PageSize int    `yaml:"page_size"`
		Refresh  string `yaml:"refresh"`
		Buffer   int    `yaml:"buffer"`
		Debounce string `yaml:"debounce"`
	} `yaml:"logs"`
	Events struct {
		Enabled   bool   `yaml:"enabled"`
		Reconnect string `yaml:"reconnect"`
	} `yaml:"events"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		File   string `yaml:"file"`
	} `yaml:"logging"`
}

// Generator defines the interface for generating lookout.yaml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	log logger.Logger
	out io.Writer
}

// NewGenerator creates a new generator instance
func NewGenerator(log logger.Logger) Generator {
	return &generator{
		log: log,
		out: os.Stdout,
	}
}

// Generate writes lookout.yaml filled with defaults, or prints it on a dry run
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if opts.Path == "" {
		opts.Path = config.ConfigFile
	}

	if !dryRun && !force {
		if _, err := os.Stat(opts.Path); err == nil {
			return fmt.Errorf("%w: %s, use --force to overwrite", errors.ErrFileAlreadyExists, opts.Path)
		}
	}

	data, err := render(opts)
	if err != nil {
		return err
	}

	if dryRun {
		_, err := g.out.Write(data)
		return err
	}

	if err := os.WriteFile(opts.Path, data, 0600); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteConfig, err)
	}

	g.log.Info().Msgf("Generated %s", opts.Path)

	return nil
}

// render builds the document from the defaults overlaid with opts
func render(opts Options) ([]byte, error) {
	cfg := config.DefaultConfig()

	var doc document

	doc.Version = cfg.Version
	doc.Server.URL = cfg.Server.URL
	doc.Server.Timeout = cfg.Server.Timeout.String()
	doc.Logs.Source = cfg.Logs.Source
	doc.Logs.Pattern = cfg.Logs.Pattern
	doc.Logs.PageSize = cfg.Logs.PageSize
	doc.Logs.Refresh = cfg.Logs.Refresh.String()
	doc.Logs.Buffer = cfg.Logs.Buffer
	doc.Logs.Debounce = cfg.Logs.Debounce.String()
	doc.Events.Enabled = cfg.Events.Enabled
	doc.Events.Reconnect = cfg.Events.Reconnect.String()
	doc.Logging.Level = cfg.Logging.Level
	doc.Logging.Format = cfg.Logging.Format
	doc.Logging.File = cfg.Logging.File

	if opts.ServerURL != "" {
		doc.Server.URL = opts.ServerURL
	}

	if opts.Source != "" {
		doc.Logs.Source = opts.Source
	}

	doc.Logs.Dir = opts.Dir

	var buf bytes.Buffer

	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return buf.Bytes(), nil
}
