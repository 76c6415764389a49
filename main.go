// main is the entry point for the standings CLI.
package main

import (
	"github.com/huangsam/standings/cmd"
	"github.com/huangsam/standings/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run standings", err)
	}
}
