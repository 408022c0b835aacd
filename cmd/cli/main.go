package main

import (
	"fmt"
	"os"

	"github.com/crucial707/studdy/cmd/cli/root"

	// Register subcommands.
	_ "github.com/crucial707/studdy/cmd/cli/plans"
	_ "github.com/crucial707/studdy/cmd/cli/users"
)

func main() {
	// Execute the root Cobra command
	if err := root.GetRoot().Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
