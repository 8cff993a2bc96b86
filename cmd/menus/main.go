package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/go-mclib/menus/cmd/menus/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
