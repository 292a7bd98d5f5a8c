package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/reoring/jsondoc/query"
)

// QueryCmd selects nodes with an RFC 9535 JSONPath expression and prints one
// compact JSON result per line.
type QueryCmd struct {
	Input string `short:"i" long:"input" description:"Input document (use - for stdin)"`
}

func (c *QueryCmd) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one EXPR argument required")
	}
	doc, err := loadInput(context.Background(), c.Input)
	if err != nil {
		return err
	}
	results, err := query.Select(doc, args[0])
	if err != nil {
		return err
	}
	for _, r := range results {
		data, err := r.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s\n", data)
	}
	return nil
}
