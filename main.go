package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"perfumefinder/internal/di"
	"perfumefinder/internal/structures"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "config.yaml", "path to the yaml config file")
	debug := pflag.BoolP("debug", "d", false, "enable debug logging to stdout")
	pflag.Parse()

	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	app, err := di.InitApp(&structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "app stopped with error: %v\n", err)
		os.Exit(1)
	}
}
