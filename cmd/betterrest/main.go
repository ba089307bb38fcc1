package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/betterrest/internal/cli"
	"github.com/julianstephens/betterrest/internal/constants"
	"github.com/julianstephens/betterrest/internal/errors"
	"github.com/julianstephens/betterrest/internal/estimator"
	"github.com/julianstephens/betterrest/internal/logger"
)

var CLI struct {
	Version  kong.VersionFlag
	ModelPath string `name:"model" help:"Model artifact path (.json, .yaml or .yml). Uses the built-in model when empty." type:"path"`
	Clamp     bool   `help:"Clamp out-of-range inputs instead of rejecting them."`
	Debug     bool   `help:"Enable debug logging to stderr."`
	LogLevel  string `help:"Log level (debug, info, warn, error). Overrides --debug."`
	LogDir    string `help:"Directory for log files." type:"path" default:"${log_dir}"`

	Estimate cli.EstimateCmd `cmd:"" help:"Estimate an ideal bedtime." default:"withargs"`
	Model    cli.ModelCmd    `cmd:"" help:"Show the loaded model artifact."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks against the model artifact."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Estimate an ideal bedtime from wake-up time, sleep goal and coffee intake"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": constants.Version,
			"log_dir": constants.DefaultLogDir,
		},
	)

	if err := logger.Init(logger.Config{
		Debug: CLI.Debug,
		Level: CLI.LogLevel,
		Dir:   CLI.LogDir,
	}); err != nil {
		// Logging is best effort; the estimate still runs.
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	policy := estimator.PolicyReject
	if CLI.Clamp {
		policy = estimator.PolicyClamp
	}

	appCtx := cli.NewContext(CLI.ModelPath, policy)
	logger.Debug("Starting command", "command", ctx.Command(), "model", appCtx.Loader.Source(), "policy", policy)

	if err := ctx.Run(appCtx); err != nil {
		errors.FatalCode(err, cli.ExitCode(err))
	}
}
