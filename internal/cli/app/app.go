package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/openlocalize/poeditor-go/pkg/poeditor"
	"github.com/openlocalize/poeditor-go/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application wires the CLI commands to a configured API client.
type Application struct {
	cfg    *Config
	logger *slog.Logger
	client *poeditor.Client
}

// New creates an Application with its API client initialized from cfg.
func New(cfg *Config) *Application {
	logger := slogx.New(slogx.Config{
		Service: "poectl",
		Version: BuildVersion,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	opts := []poeditor.Option{
		poeditor.WithTimeout(cfg.Timeout),
		poeditor.WithLogger(logger),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, poeditor.WithBaseURL(cfg.BaseURL))
	}
	if cfg.UploadInterval > 0 {
		opts = append(opts, poeditor.WithUploadInterval(cfg.UploadInterval))
	}

	return &Application{
		cfg:    cfg,
		logger: logger,
		client: poeditor.New(cfg.APIToken, opts...),
	}
}

// Run dispatches one command invocation. args is os.Args[1:].
func (a *Application) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "projects":
		return a.runProjects(ctx, args[1:])
	case "languages":
		return a.runLanguages(ctx, args[1:])
	case "terms":
		return a.runTerms(ctx, args[1:])
	case "export":
		return a.runExport(ctx, args[1:])
	case "upload":
		return a.runUpload(ctx, args[1:])
	case "contributors":
		return a.runContributors(ctx, args[1:])
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *Application) usage() {
	fmt.Fprint(os.Stderr, `poectl - POEditor command line tool

Usage:
  poectl projects     list | view | add | delete | set-reference
  poectl languages    available | list | add | delete
  poectl terms        list | add | sync
  poectl export       -id N -language CODE [-type po] [-filters f1,f2] [-tags t1,t2] [-out FILE]
  poectl upload       -id N -updating MODE -file FILE [-language CODE] [flags]
  poectl contributors list | add | admin | remove

Configuration comes from the environment (or a local .env file):
  POEDITOR_API_TOKEN (required), POEDITOR_TIMEOUT, POEDITOR_UPLOAD_INTERVAL,
  LOG_LEVEL, LOG_FORMAT
`)
}

// printJSON renders a command result to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
