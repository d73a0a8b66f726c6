package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/openlocalize/poeditor-go/internal/cli/app"
)

func main() {
	cfg, err := app.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg)
	if err := application.Run(ctx, os.Args[1:]); err != nil {
		log.Fatalf("poectl: %v", err)
	}
}
