package main

import (
	"os"

	"portfolio/cmd/portfolio-cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
