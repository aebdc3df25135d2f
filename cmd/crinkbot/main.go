package main

import (
	"os"

	"crinkbot/cmd/crinkbot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
