package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	jsondoc "github.com/reoring/jsondoc"
	"github.com/reoring/jsondoc/docio"
)

// loadInput reads a document from path, or from stdin when path is empty or
// "-". Stdin has no extension to dispatch on, so it is always parsed as JSON.
func loadInput(ctx context.Context, path string) (*jsondoc.Value, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		doc, err := jsondoc.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("decode stdin: %w", err)
		}
		return doc, nil
	}
	return docio.Load(ctx, path)
}

// writeDoc prints doc as JSON to w: compact on one line, or two-space
// indented, colorized when w is a terminal.
func writeDoc(w io.Writer, doc *jsondoc.Value, compact bool) error {
	if compact {
		data, err := doc.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	if isTerminal(w) {
		return colorJSON(w, doc)
	}
	data, err := jsondoc.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
