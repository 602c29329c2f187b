// Command calcphone runs the calculator engine without a screen.
package main

import (
	"os"

	"github.com/go-drift/calcphone/cmd/calcphone/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
