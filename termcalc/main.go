package main

import (
	"os"

	"github.com/fjl/giocalc/termcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
