package main

import (
	"os"

	"enclavecrypt/cmd/enclavecrypt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
