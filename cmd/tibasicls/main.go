package main

import (
	"os"

	"github.com/beastmatser/ti-basic-autocomplete/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
