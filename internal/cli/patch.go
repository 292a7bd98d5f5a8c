package cli

import (
	"context"
	"fmt"
	"os"

	jsondoc "github.com/reoring/jsondoc"
	"github.com/reoring/jsondoc/patch"
)

// PatchCmd applies an RFC 6902 patch (or, with --merge, an RFC 7386 merge
// patch) to a document and prints the result.
type PatchCmd struct {
	Input     string `short:"i" long:"input" description:"Document to patch (use - for stdin)"`
	PatchFile string `short:"p" long:"patch" description:"Patch document" required:"yes"`
	Merge     bool   `long:"merge" description:"Treat the patch as an RFC 7386 merge patch"`
	Compact   bool   `long:"compact" description:"Write the result on a single line"`
}

func (c *PatchCmd) Execute(_ []string) error {
	ctx := context.Background()
	doc, err := loadInput(ctx, c.Input)
	if err != nil {
		return err
	}
	ops, err := loadInput(ctx, c.PatchFile)
	if err != nil {
		return err
	}
	var result *jsondoc.Value
	if c.Merge {
		result, err = patch.Merge(doc, ops)
	} else {
		result, err = patch.Apply(doc, ops)
	}
	if err != nil {
		return fmt.Errorf("apply patch: %w", err)
	}
	return writeDoc(os.Stdout, result, c.Compact)
}
