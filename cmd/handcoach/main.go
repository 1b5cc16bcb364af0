package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Parse   ParseCmd         `cmd:"" help:"Parse free-text hand narration into structured fields"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate the best five-card hand from card tokens"`
	Spr     SprCmd           `cmd:"" help:"Compute stack-to-pot ratios and commitment bands"`
	Odds    OddsCmd          `cmd:"" help:"Estimate equity and implied-odds thresholds"`
	Serve   ServeCmd         `cmd:"" help:"Run the JSON parse API server"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handcoach"),
		kong.Description("Poker hand narration parser and strength evaluator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
