// Package main is the entry point for the cm CLI client.
package main

import (
	"github.com/donaldgifford/carmatch/cmd/cm/cmd"
)

func main() {
	cmd.Execute()
}
