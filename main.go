package main

import (
	"os"

	"github.com/bnema/edgeselect/internal/adapters/in/cli"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
