// Package logging builds the console logger from configuration.
package logging

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/peterkahumu/fastapi-todo-project/internal/config"
)

// New returns a logger configured from cfg, writing to stderr.
func New(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Formatter:       parseFormat(cfg.LogFormat),
		ReportTimestamp: cfg.LogTimestamps,
		ReportCaller:    cfg.LogCaller,
		Prefix:          "todod",
	})
}

func parseFormat(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
