// Package config loads the analysis configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/viranchils96/simple-text-analysis/utils"
)

// Config is the top-level application configuration.
type Config struct {
	Books     []BookConfig        `yaml:"books"`
	Tokenizer TokenizerConfig     `yaml:"tokenizer"`
	WordLists map[string][]string `yaml:"wordLists"`
	Analysis  AnalysisConfig      `yaml:"analysis"`
	Logging   LoggingConfig       `yaml:"logging"`
}

// BookConfig names a book file and the literal lines around its content.
type BookConfig struct {
	Path        string `yaml:"path"`
	StartMarker string `yaml:"startMarker"`
	EndMarker   string `yaml:"endMarker"`
}

type TokenizerConfig struct {
	Delimiters string `yaml:"delimiters"`
	Lowercase  bool   `yaml:"lowercase"`
}

type AnalysisConfig struct {
	Workers             int  `yaml:"workers"`
	Top                 int  `yaml:"top"`
	FallbackToWholeText bool `yaml:"fallbackToWholeText"`
}

// LoggingConfig controls zap level and encoding.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Override adjusts a loaded config before it is validated.
type Override func(*Config)

// Load reads a YAML config file (if provided), applies TA_* environment
// overrides, then the given overrides in order, and validates the result.
func Load(path string, overrides ...Override) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	for _, o := range overrides {
		o(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Tokenizer: TokenizerConfig{
			Delimiters: utils.DefaultDelimiters,
			Lowercase:  true,
		},
		WordLists: map[string][]string{
			"scary": {"wretched", "unfortunate", "horrible", "darkness", "miserable", "sad", "unhappy"},
			"happy": {"happy", "beautiful"},
		},
		Analysis: AnalysisConfig{
			Workers: 1,
			Top:     10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TA_BOOKS"); v != "" {
		cfg.Books = cfg.Books[:0]
		for _, p := range strings.Split(v, ",") {
			cfg.Books = append(cfg.Books, BookConfig{Path: strings.TrimSpace(p)})
		}
	}
	if v := os.Getenv("TA_START_MARKER"); v != "" {
		for i := range cfg.Books {
			cfg.Books[i].StartMarker = v
		}
	}
	if v := os.Getenv("TA_END_MARKER"); v != "" {
		for i := range cfg.Books {
			cfg.Books[i].EndMarker = v
		}
	}
	if v := os.Getenv("TA_LOWERCASE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tokenizer.Lowercase = b
		}
	}
	if v := os.Getenv("TA_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.Workers = n
		}
	}
	if v := os.Getenv("TA_TOP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.Top = n
		}
	}
	if v := os.Getenv("TA_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TA_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var err error
	for i, b := range c.Books {
		if b.Path == "" {
			err = multierr.Append(err, fmt.Errorf("books[%d]: path is required", i))
		}
		// Markers come in pairs; both empty means analyze the whole text.
		if (b.StartMarker == "") != (b.EndMarker == "") {
			err = multierr.Append(err, fmt.Errorf("books[%d]: %w: start and end markers must both be set", i, utils.ErrEmptyMarker))
		}
	}
	if c.Tokenizer.Delimiters == "" {
		err = multierr.Append(err, fmt.Errorf("tokenizer.delimiters must not be empty"))
	}
	if c.Analysis.Workers < 1 {
		err = multierr.Append(err, fmt.Errorf("analysis.workers must be positive, got %d", c.Analysis.Workers))
	}
	if c.Analysis.Top < 0 {
		err = multierr.Append(err, fmt.Errorf("analysis.top must not be negative, got %d", c.Analysis.Top))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.format %q is not one of json, console", c.Logging.Format))
	}
	return err
}

// AnalyzeOptions converts the config for one book into pipeline options.
func (c *Config) AnalyzeOptions(book BookConfig) utils.AnalyzeOptions {
	return utils.AnalyzeOptions{
		StartMarker: book.StartMarker,
		EndMarker:   book.EndMarker,
		Tokenize: utils.TokenizeOptions{
			Delimiters: c.Tokenizer.Delimiters,
			Lowercase:  c.Tokenizer.Lowercase,
		},
		WordLists:           c.WordLists,
		FallbackToWholeText: c.Analysis.FallbackToWholeText,
		Workers:             c.Analysis.Workers,
	}
}
