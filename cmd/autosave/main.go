package main

import (
	"os"

	"github.com/autosave-dev/autosave/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
