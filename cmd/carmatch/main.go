// Package main is the entry point for the carmatch server.
package main

import (
	"os"

	"github.com/donaldgifford/carmatch/cmd/carmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
