package jsondoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// Parse decodes a single JSON document into a fresh tree. Object member
// order and duplicate keys are preserved as they appear on the wire.
//
// Numbers without a fraction or exponent become integer when negative and
// unsigned otherwise; values that do not fit 64 bits fall back to real.
func Parse(data []byte) (*Value, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("jsondoc: parse json: empty input")
		}
		return nil, fmt.Errorf("jsondoc: parse json: %w", err)
	}
	v, err := decodeValue(dec, tok)
	if err != nil {
		return nil, fmt.Errorf("jsondoc: parse json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("jsondoc: parse json: trailing data after top-level value")
	}
	return v, nil
}

func decodeValue(dec *j.Decoder, tok j.Token) (*Value, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			v := &Value{kind: KindObject}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				valTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				child, err := decodeValue(dec, valTok)
				if err != nil {
					return nil, err
				}
				v.obj = append(v.obj, Field{Key: key, Value: child})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return v, nil
		case '[':
			v := &Value{kind: KindArray}
			for dec.More() {
				elemTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				child, err := decodeValue(dec, elemTok)
				if err != nil {
					return nil, err
				}
				v.arr = append(v.arr, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return v, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return String(t), nil
	case bool:
		return Boolean(t), nil
	case j.Number:
		return numberValue(t)
	case float64:
		return Real(t), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func numberValue(n j.Number) (*Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if strings.HasPrefix(s, "-") {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return Integer(i), nil
			}
		} else if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Unsigned(u), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return Real(f), nil
}

// UnmarshalJSON replaces the node's contents with the decoded document.
// Views of the node itself remain valid; views into its former children
// become stale.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	replaceNode(v, parsed)
	return nil
}

// MarshalJSON encodes the tree as compact JSON. Binary values render as
// base64 strings; the binary kind itself does not survive a round trip.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v *Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBoolean:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindInteger:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindUnsigned:
		buf.WriteString(strconv.FormatUint(v.u, 10))
	case KindReal:
		b, err := j.Marshal(v.f)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindString:
		b, err := j.Marshal(v.s)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindBinary:
		if len(v.bin) == 0 {
			buf.WriteString(`""`)
			return nil
		}
		b, err := j.Marshal(v.bin)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindArray:
		buf.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, f := range v.obj {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := j.Marshal(f.Key)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := encodeValue(buf, f.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// MarshalIndent encodes the tree as indented JSON.
func MarshalIndent(v *Value, prefix, indent string) ([]byte, error) {
	b, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := j.Indent(&buf, b, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
