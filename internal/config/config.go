// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kballard/go-shellquote"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Log       LogConfig       `toml:"log"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	YtDlp     YtDlpConfig     `toml:"ytdlp"`
}

type ServerConfig struct {
	Listen string `toml:"listen"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`

	// File switches logging from stdout to a rotating file when set.
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

type SchedulerConfig struct {
	TickSeconds int  `toml:"tick_seconds"`
	Disabled    bool `toml:"disabled"`
}

type YtDlpConfig struct {
	Path           string `toml:"path"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	DownloadDir    string `toml:"download_dir"`
	ExtraArgs      string `toml:"extra_args"`
}

// Timeout returns the subprocess timeout as a duration.
func (y YtDlpConfig) Timeout() time.Duration {
	return time.Duration(y.TimeoutSeconds) * time.Second
}

// SplitExtraArgs parses extra_args into an argument vector using shell
// quoting rules.
func (y YtDlpConfig) SplitExtraArgs() ([]string, error) {
	if y.ExtraArgs == "" {
		return nil, nil
	}
	return shellquote.Split(y.ExtraArgs)
}

// TickInterval returns the scheduler cadence as a duration.
func (s SchedulerConfig) TickInterval() time.Duration {
	return time.Duration(s.TickSeconds) * time.Second
}

// Load reads, substitutes, parses and validates the configuration file.
// Missing environment variables and validation failures are reported
// together through a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cerr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}
	return cfg, nil
}

// LoadWithoutValidation parses the file and applies defaults, skipping
// env-var and validation checks. Used when writing or editing a config
// that is not expected to be complete yet.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, missing, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8585"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/vodarr.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = 10
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = 3
	}
	if cfg.Scheduler.TickSeconds == 0 {
		cfg.Scheduler.TickSeconds = 60
	}
	if cfg.YtDlp.Path == "" {
		cfg.YtDlp.Path = "yt-dlp"
	}
	if cfg.YtDlp.TimeoutSeconds == 0 {
		cfg.YtDlp.TimeoutSeconds = 600
	}
	if cfg.YtDlp.DownloadDir == "" {
		cfg.YtDlp.DownloadDir = "./downloads"
	}
}
