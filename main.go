package main

import (
	"os"

	"github.com/mbos/woordwacht/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
