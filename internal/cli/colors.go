package cli

import (
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"
	j "github.com/goccy/go-json"

	jsondoc "github.com/reoring/jsondoc"
)

var (
	keyColor     = color.New(color.FgHiBlue).SprintFunc()
	stringColor  = color.New(color.FgGreen).SprintFunc()
	numberColor  = color.New(color.FgCyan).SprintFunc()
	literalColor = color.New(color.FgYellow).SprintFunc()
)

// colorJSON writes doc as two-space-indented JSON with each token class
// styled. The layout matches MarshalIndent(doc, "", "  ") exactly, so piping
// with colors disabled is byte-identical to the plain encoder.
func colorJSON(w io.Writer, doc *jsondoc.Value) error {
	var buf bytes.Buffer
	if err := writeColorValue(&buf, doc, 0); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func writeColorValue(buf *bytes.Buffer, v *jsondoc.Value, depth int) error {
	switch v.Kind() {
	case jsondoc.KindArray:
		elems := v.Elements()
		if len(elems) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, e := range elems {
			if i > 0 {
				buf.WriteString(",\n")
			}
			writeIndent(buf, depth+1)
			if err := writeColorValue(buf, e, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('\n')
		writeIndent(buf, depth)
		buf.WriteByte(']')
	case jsondoc.KindObject:
		fields := v.Fields()
		if len(fields) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for i, f := range fields {
			if i > 0 {
				buf.WriteString(",\n")
			}
			writeIndent(buf, depth+1)
			key, err := j.Marshal(f.Key)
			if err != nil {
				return err
			}
			buf.WriteString(keyColor(string(key)))
			buf.WriteString(": ")
			if err := writeColorValue(buf, f.Value, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('\n')
		writeIndent(buf, depth)
		buf.WriteByte('}')
	default:
		tok, err := v.MarshalJSON()
		if err != nil {
			return err
		}
		buf.WriteString(tokenColor(v.Kind())(string(tok)))
	}
	return nil
}

func tokenColor(k jsondoc.Kind) func(...interface{}) string {
	switch k {
	case jsondoc.KindString, jsondoc.KindBinary:
		return stringColor
	case jsondoc.KindInteger, jsondoc.KindUnsigned, jsondoc.KindReal:
		return numberColor
	default:
		return literalColor
	}
}

func writeIndent(buf *bytes.Buffer, depth int) {
	buf.WriteString(strings.Repeat("  ", depth))
}
