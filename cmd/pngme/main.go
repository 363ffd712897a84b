// Command pngme hides messages in PNG chunks, lists and scrubs chunks,
// and generates demonstration images.
package main

import (
	"os"

	"github.com/fumin/pngme/internal/cli"
)

func main() {
	err := root(os.Stdout).Execute(os.Args[1:])
	os.Exit(cli.Exit(os.Stderr, "pngme", err))
}
