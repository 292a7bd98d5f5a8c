package main

import (
	"os"

	"github.com/reoring/jsondoc/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
