// Command fastblur applies a fast approximate Gaussian blur to image files.
package main

import (
	"fmt"
	"os"

	"github.com/rasterfx/fastblur/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
