package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"estimate_agent/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
