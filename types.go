package tlog

type Kind uint8

const (
	KindText Kind = iota + 1
	KindInt
	KindUint
	KindFloat
	KindBool
	KindChar
)

// Value is a compact, reflection-free union over the supported append
// categories. Build one with the V* constructors; a zero Value appends
// nothing.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Uint  uint64
	Float float64
	Bool  bool
	Char  rune
}

func VText(s string) Value   { return Value{Kind: KindText, Str: s} }
func VInt(v int64) Value     { return Value{Kind: KindInt, Int: v} }
func VUint(v uint64) Value   { return Value{Kind: KindUint, Uint: v} }
func VFloat(v float64) Value { return Value{Kind: KindFloat, Float: v} }
func VBool(v bool) Value     { return Value{Kind: KindBool, Bool: v} }
func VChar(c rune) Value     { return Value{Kind: KindChar, Char: c} }
