package main

import (
	"os"

	"kmacrypt/cmd/kmacrypt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
