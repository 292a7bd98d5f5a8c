package cli

import (
	"context"
	"os"

	"github.com/reoring/jsondoc/docio"
)

// ConvertCmd reads a document in any supported format and rewrites it, with
// the output format chosen by the destination extension. Without -o the
// result goes to stdout as JSON.
type ConvertCmd struct {
	Input   string `short:"i" long:"input" description:"Input document (use - for stdin)"`
	Output  string `short:"o" long:"output" description:"Destination path; format follows its extension"`
	Compact bool   `long:"compact" description:"Write stdout JSON on a single line"`
}

func (c *ConvertCmd) Execute(_ []string) error {
	ctx := context.Background()
	doc, err := loadInput(ctx, c.Input)
	if err != nil {
		return err
	}
	if c.Output != "" {
		return docio.Save(ctx, c.Output, doc)
	}
	return writeDoc(os.Stdout, doc, c.Compact)
}
