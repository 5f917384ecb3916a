package main

import (
	"os"

	"github.com/martijn/habilitations/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
