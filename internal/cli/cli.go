// Package cli implements the jsondoc command. Each sub-command is a go-flags
// command struct with an Execute method; Run wires them up and maps errors to
// exit codes (0 ok, 1 documents differ, 2 trouble).
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// errDocumentsDiffer is returned by the diff command when the inputs are not
// equal; Run turns it into exit status 1 without printing anything further.
var errDocumentsDiffer = errors.New("documents differ")

// Run is the entry point for the CLI, separated from the main package to keep
// the command usable from tests as well.
func Run(args []string) int {
	opts := &Options{}
	var first string
	if len(args) > 0 {
		first = args[0]
	}
	opts.Init(first)

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(flagsErr.Message)
			return 0
		}
		if errors.Is(err, errDocumentsDiffer) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "jsondoc: %v\n", err)
		return 2
	}
	return 0
}
