package main

import (
	"fmt"
	"os"

	"closepack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "closepack:", err)
		os.Exit(1)
	}
}
