package main

import (
	"os"

	"github.com/smartfarming/pulsemart/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
