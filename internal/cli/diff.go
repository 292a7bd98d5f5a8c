package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	jsondoc "github.com/reoring/jsondoc"
	"github.com/reoring/jsondoc/docio"
)

// DiffCmd compares two documents structurally: both are rendered to canonical
// pretty JSON and diffed line by line, so formatting and source format
// differences (JSON vs YAML) do not show up.
type DiffCmd struct{}

func (c *DiffCmd) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("exactly two document arguments required")
	}
	ctx := context.Background()
	a, err := docio.Load(ctx, args[0])
	if err != nil {
		return err
	}
	b, err := docio.Load(ctx, args[1])
	if err != nil {
		return err
	}
	aText, err := canonical(a)
	if err != nil {
		return err
	}
	bText, err := canonical(b)
	if err != nil {
		return err
	}
	if !renderDiff(os.Stdout, aText, bText) {
		return nil
	}
	return errDocumentsDiffer
}

func canonical(doc *jsondoc.Value) (string, error) {
	data, err := jsondoc.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// renderDiff prints a line diff of a and b to w and reports whether they
// differ. Inserted lines are prefixed "+" (green), deleted lines "-" (red).
func renderDiff(w io.Writer, a, b string) bool {
	if a == b {
		return false
	}
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	for _, d := range diffs {
		prefix, paint := " ", fmt.Sprintf
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix, paint = "+", color.GreenString
		case diffmatchpatch.DiffDelete:
			prefix, paint = "-", color.RedString
		}
		for _, line := range splitLines(d.Text) {
			fmt.Fprintln(w, paint("%s%s", prefix, line))
		}
	}
	return true
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
