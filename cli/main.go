package main

import (
	"os"

	"github.com/campbsb/sqlhelper/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
