package cli

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Convert *ConvertCmd `command:"convert" description:"Convert a document between JSON and YAML"`
	Get     *GetCmd     `command:"get"     description:"Resolve a slash path and print the subtree"`
	Diff    *DiffCmd    `command:"diff"    description:"Line diff of two documents in canonical JSON"`
	Patch   *PatchCmd   `command:"patch"   description:"Apply an RFC 6902 or merge patch"`
	Query   *QueryCmd   `command:"query"   description:"Select nodes with a JSONPath expression"`
	Filter  *FilterCmd  `command:"filter"  description:"Print files whose document satisfies an expression"`
}

// Init instantiates the sub-command referenced by the first positional
// argument so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "convert":
		o.Convert = &ConvertCmd{}
	case "get":
		o.Get = &GetCmd{}
	case "diff":
		o.Diff = &DiffCmd{}
	case "patch":
		o.Patch = &PatchCmd{}
	case "query":
		o.Query = &QueryCmd{}
	case "filter":
		o.Filter = &FilterCmd{}
	}
}
