package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"weather-cli/config"
	"weather-cli/datasource"
)

// Exit codes returned by Run
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

const usage = `weather-cli - a lightweight command-line weather application

Usage:
  weather-cli                              print the current forecast
  weather-cli key <api_key>                set your OpenWeatherMap API key
  weather-cli location <location>          set the location to query, e.g. "London,UK"
  weather-cli temperature-format <format>  set the unit: celsius, fahrenheit or kelvin (default celsius)
  weather-cli help                         show this message
`

// Run executes one command line and returns the process exit code
func Run(ctx context.Context, args []string, env config.Env, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	rest := fs.Args()
	if len(rest) > 0 && rest[0] == "help" {
		fmt.Fprint(stdout, usage)
		return ExitOK
	}

	set, err := setter(rest)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, usage)
		return ExitUsage
	}

	cfg, err := config.ReadOrDefault(env.ConfigDir)
	if err != nil {
		return fail(stderr, err)
	}

	if set != nil {
		if err := set(cfg); err != nil {
			return fail(stderr, err)
		}
		return ExitOK
	}

	line, err := Query(ctx, cfg, newSource(env, cfg))
	if err != nil {
		return fail(stderr, err)
	}
	fmt.Fprintln(stdout, line)
	return ExitOK
}

// setter maps a subcommand to the configuration mutation it performs.
// A nil setter with a nil error means no subcommand was given.
func setter(args []string) (func(*config.Config) error, error) {
	if len(args) == 0 {
		return nil, nil
	}

	var set func(*config.Config, string) error
	switch args[0] {
	case "key":
		set = (*config.Config).SetAPIKey
	case "location":
		set = (*config.Config).SetLocationName
	case "temperature-format":
		set = (*config.Config).SetTemperatureFormat
	default:
		return nil, fmt.Errorf("unknown command %q", args[0])
	}

	if len(args) != 2 {
		return nil, fmt.Errorf("%s takes exactly one argument", args[0])
	}
	value := args[1]
	return func(cfg *config.Config) error { return set(cfg, value) }, nil
}

func newSource(env config.Env, cfg *config.Config) datasource.ForecastSource {
	var src datasource.ForecastSource = datasource.NewOpenWeatherMapProvider(cfg.APIKey, env.BaseURL)
	if env.RateLimit > 0 {
		// OpenWeatherMap free tier allows 60 calls/minute. A burst of 1 lets
		// the single query through at once; Wait still honors ctx cancellation.
		src = datasource.NewRateLimitedForecastSource(src, env.RateLimit, 1)
	}
	return src
}

func fail(stderr io.Writer, err error) int {
	slog.Debug("command failed", "err", err)
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitError
}
