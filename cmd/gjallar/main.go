package main

import (
	"os"

	"github.com/3-lines-studio/gjallar/internal/adapters/cli"
)

func main() {
	cmd := newRootCmd(cli.NewOutput())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
