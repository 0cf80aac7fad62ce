package main

import (
	"os"

	"github.com/chromarks/chromarks/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
