// Package cmd implements the CLI command structure for todod.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterkahumu/fastapi-todo-project/internal/api"
	"github.com/peterkahumu/fastapi-todo-project/internal/client"
	"github.com/peterkahumu/fastapi-todo-project/internal/config"
	"github.com/peterkahumu/fastapi-todo-project/internal/logging"
	"github.com/peterkahumu/fastapi-todo-project/internal/store"
	"github.com/peterkahumu/fastapi-todo-project/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the todod CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("todod", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand; default to "serve"
	subcommand := "serve"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
	}

	switch subcommand {
	case "serve":
		return serveCommand(ctx, cfg)
	case "tui":
		return tuiCommand(ctx, cfg)
	case "version":
		return versionCommand()
	default:
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown subcommand: %s", subcommand)
	}
}

// serveCommand seeds the collection and runs the HTTP server.
func serveCommand(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg)

	st := store.New(cfg.SeedCount)
	logger.Info("seeded collection", "count", cfg.SeedCount)

	handler := api.NewRouter(st, logger)
	return api.Serve(ctx, cfg.Addr, handler, logger)
}

// tuiCommand runs the terminal client against a running server.
func tuiCommand(ctx context.Context, cfg *config.Config) error {
	return ui.Run(ctx, client.New(cfg.BaseURL))
}

func versionCommand() error {
	fmt.Printf("todod %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: todod [flags] [subcommand]\n\n")
	fmt.Fprintf(w, "Subcommands:\n")
	fmt.Fprintf(w, "  serve     Run the HTTP server (default)\n")
	fmt.Fprintf(w, "  tui       Browse a running server in the terminal\n")
	fmt.Fprintf(w, "  version   Show version\n\n")
	fmt.Fprintf(w, "Flags:\n")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
