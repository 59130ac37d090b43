// Command drawer is the CLI for the drawer engine.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/drawer/cmd/drawer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
