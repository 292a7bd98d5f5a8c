// Package docio loads and saves documents by URL through the afs storage
// abstraction, choosing the format from the file extension: .yaml and .yml
// go through yamlconv, everything else through the JSON codec.
package docio

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"

	jsondoc "github.com/reoring/jsondoc"
	"github.com/reoring/jsondoc/yamlconv"
)

// Load downloads the document at URL and decodes it by extension.
func Load(ctx context.Context, URL string) (*jsondoc.Value, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("docio: download %q: %w", URL, err)
	}
	var doc *jsondoc.Value
	if IsYAML(URL) {
		doc, err = yamlconv.Decode(data)
	} else {
		doc, err = jsondoc.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("docio: decode %q: %w", URL, err)
	}
	return doc, nil
}

// Save encodes v by the URL's extension and uploads it. JSON documents are
// written two-space indented with a trailing newline.
func Save(ctx context.Context, URL string, v *jsondoc.Value) error {
	var data []byte
	var err error
	if IsYAML(URL) {
		data, err = yamlconv.Encode(v)
	} else {
		data, err = jsondoc.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	}
	if err != nil {
		return fmt.Errorf("docio: encode %q: %w", URL, err)
	}
	fs := afs.New()
	if err := fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("docio: upload %q: %w", URL, err)
	}
	return nil
}

// IsYAML reports whether the URL's extension selects the YAML format.
func IsYAML(URL string) bool {
	switch strings.ToLower(path.Ext(URL)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
