package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/hirepaso/cmd"
	"github.com/thenoetrevino/hirepaso/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *cli.ExitStatusError
		// commands that return an ExitStatusError have already reported it
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
