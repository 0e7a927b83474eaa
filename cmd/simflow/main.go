// Package main is the entry point for the simflow command-line tool.
package main

import (
	"os"

	"github.com/hdlforge/simflow/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
