package cli

import (
	"context"
	"fmt"
	"os"

	jsondoc "github.com/reoring/jsondoc"
)

// GetCmd resolves a slash-separated path ("/servers/0/port") and prints the
// subtree it names.
type GetCmd struct {
	Input   string `short:"i" long:"input" description:"Input document (use - for stdin)"`
	Compact bool   `long:"compact" description:"Write the subtree on a single line"`
}

func (c *GetCmd) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one PATH argument required")
	}
	doc, err := loadInput(context.Background(), c.Input)
	if err != nil {
		return err
	}
	sub := doc.View().Resolve(args[0])
	if !sub.Valid() {
		return fmt.Errorf("no node at %q", args[0])
	}
	var out *jsondoc.Value
	if err := jsondoc.GetValue(sub, &out); err != nil {
		return err
	}
	return writeDoc(os.Stdout, out, c.Compact)
}
