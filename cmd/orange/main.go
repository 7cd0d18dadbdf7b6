// cmd/orange/main.go
package main

import (
	"os"

	"github.com/orange-update/orange/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
