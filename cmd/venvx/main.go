package main

import (
	"os"

	"github.com/hbjs97/venvx/internal/cli"
	"github.com/hbjs97/venvx/internal/cmdexec"
)

func main() {
	app := &cli.App{Commander: &cmdexec.RealCommander{}}
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(int(cli.MapExitCode(err)))
	}
}
