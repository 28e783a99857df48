// Command dividerdemo hosts the divider widgets on a tcell terminal
// screen for interactive poking.
package main

import (
	"os"

	"github.com/go-drift/dividers/cmd/dividerdemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
