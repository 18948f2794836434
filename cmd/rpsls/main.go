package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// CLI holds the command line flags. Every flag is optional; with none the
// game runs on stdin and stdout with default settings.
type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Config     string           `short:"c" default:"rpsls.hcl" help:"Path to HCL configuration file"`
	Seed       *int64           `help:"Deterministic seed for the computer's choices (overrides config)"`
	LogFile    string           `help:"Append diagnostic logs to this file instead of stderr (overrides config)"`
	LogLevel   string           `help:"Log level: debug, info, warn or error (overrides config)"`
	Theme      string           `help:"Output theme: default or plain (overrides config)"`
	NoProgress bool             `help:"Skip the progress bar between menu selections"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rpsls"),
		kong.Description("Rock-Paper-Scissors-Lizard-Spock against the computer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := cli.Run()
	ctx.FatalIfErrorf(err)
}
