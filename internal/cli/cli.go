package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/vk/gridsow/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Arguments after a literal `--` are `--path value` overrides applied to the
// base config.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("sow", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
sow - derive experiment configs from a launch description and plant them.

Usage:
  sow -f LAUNCH_FILE -k KEY [options] [--mock [NAME...]] [-- --path value ...]

Positional arguments after the options are the experiment names to print in
mock mode. Arguments after "--" override base config values, e.g.
  sow -f launch.yml -k v1 -- --train.lr 0.05

Options:
`)
		flagSet.PrintDefaults()
	}

	var cfg app.Config
	flagSet.StringVar(&cfg.File, "file", "", "Path to the launch description (.yml, .yaml, .json or .hcl).")
	flagSet.StringVar(&cfg.File, "f", "", "Path to the launch description (shorthand).")
	flagSet.StringVar(&cfg.Key, "key", "", "Key used to name the runs_<key> directory and the exps_<key>.yml log.")
	flagSet.StringVar(&cfg.Key, "k", "", "Key (shorthand).")
	flagSet.StringVar(&cfg.Dir, "dir", "", "Directory holding the run directory and the log. Defaults to the working directory.")
	flagSet.IntVar(&cfg.NestAt, "nest-at", -1, "Nest experiment directories: 0 turns a_b_c into a_b/c, 1 into a_b_c/d. -1 disables.")
	flagSet.IntVar(&cfg.Repeat, "repeat", 0, "Plant each experiment under this many numbered sub-directories.")
	flagSet.BoolVar(&cfg.Overwrite, "overwrite", false, "Overwrite existing experiments with the same name.")
	flagSet.BoolVar(&cfg.Mock, "mock", false, "Print the selected (default all) configs instead of planting them.")
	flagSet.BoolVar(&cfg.Mock, "m", false, "Mock mode (shorthand).")
	flagSet.StringVar(&cfg.MockFormat, "mock-format", "yaml", "Mock output format. Options: 'yaml' or 'hcl'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	flagArgs, overrides := splitOverrides(args)
	if err := flagSet.Parse(flagArgs); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if cfg.File == "" {
		slog.Debug("No launch file provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if flagSet.NArg() > 0 {
		if !cfg.Mock {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments %q: experiment names are only accepted with --mock", flagSet.Args())}
		}
		cfg.MockNames = flagSet.Args()
	}
	cfg.Overrides = overrides
	cfg.LogFormat = strings.ToLower(*logFormatFlag)
	cfg.LogLevel = strings.ToLower(*logLevelFlag)

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitOverrides cuts args at the first literal "--".
func splitOverrides(args []string) (flags, overrides []string) {
	i := slices.Index(args, "--")
	if i < 0 {
		return args, nil
	}
	return args[:i], args[i+1:]
}
