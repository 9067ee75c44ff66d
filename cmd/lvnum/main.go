// SPDX-License-Identifier: MIT

// Command lvnum inspects the numeric dispatch tables.
package main

import (
	"os"

	"github.com/katalvlaran/lvnum/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
