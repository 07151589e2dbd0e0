package main

import (
	"context"
	"os"

	"github.com/xpressformula/xfversion/internal/cli"
	"github.com/xpressformula/xfversion/internal/config"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		cli.ReportError(err)
		os.Exit(1)
	}
}

// runCLI runs the root command with args. Configuration is loaded by the
// command itself once flags are parsed.
func runCLI(args []string) error {
	return cli.New(config.LoadConfigFn).Run(context.Background(), args)
}
