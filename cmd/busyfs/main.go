package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/rowantrollope/busyfs/internal/cmd"
	"github.com/rowantrollope/busyfs/internal/config"
	"github.com/rowantrollope/busyfs/internal/output"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()
	cfg.Version = version

	// Diagnostics are read by log collectors, never a terminal.
	color.NoColor = true

	router := cmd.NewRouter(cfg, output.NewFormatter())
	return int(router.Dispatch(os.Args))
}
