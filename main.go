package main

import (
	"os"

	"github.com/rsarma/maestro/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
