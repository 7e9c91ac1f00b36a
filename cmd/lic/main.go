package main

import (
	"os"

	"github.com/mattdh/lic-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
