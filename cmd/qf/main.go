package main

import (
	"os"

	"github.com/natwijaya19/qf-lib/cmd/qf/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
