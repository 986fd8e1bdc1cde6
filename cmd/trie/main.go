package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/sarthakjha889/go-basic-trie/internal/config"
)

func main() {
	ctx := kong.Parse(&CLI, kong.Name("trie"), kong.Description("Query word lists through a prefix tree."), kong.UsageOnError())

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	run := &Context{
		Config: cfg,
		Log:    cfg.Log.Logger(os.Stderr),
		Out:    os.Stdout,
	}
	if err := ctx.Run(run); err != nil {
		run.Log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
