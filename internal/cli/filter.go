package cli

import (
	"context"
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/reoring/jsondoc/docio"
)

// FilterCmd compiles an expr-lang expression once and prints the names of
// the files whose document evaluates to true. Top-level keys of each document
// are the expression's identifiers, so `port > 1024 && name == "db"` matches
// documents of that shape.
type FilterCmd struct{}

func (c *FilterCmd) Execute(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("EXPR and at least one FILE argument required")
	}
	prg, err := expr.Compile(args[0])
	if err != nil {
		return fmt.Errorf("compile %q: %w", args[0], err)
	}
	ctx := context.Background()
	for _, name := range args[1:] {
		doc, err := docio.Load(ctx, name)
		if err != nil {
			return err
		}
		env, ok := doc.Interface().(map[string]any)
		if !ok {
			return fmt.Errorf("%s: document root is not an object", name)
		}
		out, err := expr.Run(prg, env)
		if err != nil {
			return fmt.Errorf("%s: evaluate: %w", name, err)
		}
		if matched, _ := out.(bool); matched {
			fmt.Println(name)
		}
	}
	return nil
}
