// Command json5 parses and formats JSON5 documents from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/qvecs/go-json5/internal/cli"
)

func main() {
	cfg := cli.NewConfig()
	root := cli.NewRootCommand(cfg)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
