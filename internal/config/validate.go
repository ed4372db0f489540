package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Listen != "" {
		if _, _, err := net.SplitHostPort(c.Server.Listen); err != nil {
			errs = append(errs, fmt.Sprintf("server.listen: %q is not a host:port address", c.Server.Listen))
		}
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if c.Log.MaxSizeMB < 0 {
		errs = append(errs, fmt.Sprintf("log.max_size_mb: must not be negative, got %d", c.Log.MaxSizeMB))
	}
	if c.Log.MaxBackups < 0 {
		errs = append(errs, fmt.Sprintf("log.max_backups: must not be negative, got %d", c.Log.MaxBackups))
	}

	if c.Scheduler.TickSeconds < 0 {
		errs = append(errs, fmt.Sprintf("scheduler.tick_seconds: must not be negative, got %d", c.Scheduler.TickSeconds))
	}

	if c.YtDlp.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Sprintf("ytdlp.timeout_seconds: must not be negative, got %d", c.YtDlp.TimeoutSeconds))
	}
	if _, err := c.YtDlp.SplitExtraArgs(); err != nil {
		errs = append(errs, fmt.Sprintf("ytdlp.extra_args: %v", err))
	}

	// Executable path warning. Bare names resolve via $PATH at runtime and
	// are not checked here.
	if filepath.IsAbs(c.YtDlp.Path) {
		if _, err := os.Stat(c.YtDlp.Path); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("ytdlp.path: warning: %q does not exist", c.YtDlp.Path))
		}
	}

	return errs
}
