package main

import (
	"fmt"
	"os"

	"github.com/paykit/cardkit/cmd/cardkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
