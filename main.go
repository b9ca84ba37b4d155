package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"weather-cli/cli"
	"weather-cli/config"
	"weather-cli/logging"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file, if there is one
	dotenvErr := godotenv.Load()

	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitError)
	}

	slog.SetDefault(logging.New(os.Stderr, env))
	if dotenvErr != nil && !errors.Is(dotenvErr, fs.ErrNotExist) {
		slog.Warn("error loading .env file", "err", dotenvErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], env, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
