package jsondoc

import "strconv"

// Kind identifies the representation currently held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindInteger
	KindUnsigned
	KindReal
	KindBoolean
	KindString
	KindArray
	KindObject
	KindBinary
)

var kindNames = [...]string{
	KindNull:     "null",
	KindInteger:  "integer",
	KindUnsigned: "unsigned",
	KindReal:     "real",
	KindBoolean:  "boolean",
	KindString:   "string",
	KindArray:    "array",
	KindObject:   "object",
	KindBinary:   "binary",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// sized reports whether the kind carries a countable payload.
func (k Kind) sized() bool {
	switch k {
	case KindString, KindArray, KindObject, KindBinary:
		return true
	}
	return false
}
