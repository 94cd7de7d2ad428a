package main

import (
	"os"

	"github.com/lucashald/card/cmd/cardconv/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
