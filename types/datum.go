package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a tagged scalar variant over {Int, Float, String, Boolean, Null}.
// It is immutable once constructed.
type Value struct {
	kind Type
	i    int64
	f    float64
	s    string
	b    bool
}

// NewInt builds an Int-typed Value.
func NewInt(v int64) Value { return Value{kind: Int, i: v} }

// NewFloat builds a Float-typed Value.
func NewFloat(v float64) Value { return Value{kind: Float, f: v} }

// NewString builds a String-typed Value.
func NewString(v string) Value { return Value{kind: String, s: v} }

// NewBoolean builds a Boolean-typed Value.
func NewBoolean(v bool) Value { return Value{kind: Boolean, b: v} }

// NewNull builds the Null value.
func NewNull() Value { return Value{kind: Null} }

// Type returns the Value's runtime type; always concrete.
func (v Value) Type() Type { return v.kind }

// IsNull reports whether v is the Null value.
func (v Value) IsNull() bool { return v.kind == Null }

func (v Value) Int() int64      { return v.i }
func (v Value) Float() float64  { return v.f }
func (v Value) String() string  { return v.s }
func (v Value) Bool() bool      { return v.b }

// ValueKey is a total-equality, hashable projection of a Value, suitable as
// a Go map key or as hash-aggregation group-key material. Floats compare by
// bit pattern, so NaN equals itself and +0/-0 are distinct.
type ValueKey struct {
	Kind Type
	Bits uint64
	Str  string
}

// Key returns v's ValueKey projection.
func (v Value) Key() ValueKey {
	switch v.kind {
	case Int:
		return ValueKey{Kind: Int, Bits: uint64(v.i)}
	case Float:
		return ValueKey{Kind: Float, Bits: math.Float64bits(v.f)}
	case Boolean:
		b := uint64(0)
		if v.b {
			b = 1
		}
		return ValueKey{Kind: Boolean, Bits: b}
	case String:
		return ValueKey{Kind: String, Str: v.s}
	case Null:
		// Nulls are equal to nulls and hash to a fixed sentinel.
		return ValueKey{Kind: Null}
	default:
		return ValueKey{Kind: v.kind}
	}
}

// Equal implements the Datum equality law: cross-variant comparisons are
// false, floats compare by bit pattern, nulls equal nulls.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	return v.Key() == other.Key()
}

// Render formats v the way the (external) wire/shell layer presents it:
// Int/Float via standard decimal, Boolean as TRUE/FALSE, String verbatim,
// Null as NULL.
func (v Value) Render() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case String:
		return v.s
	case Boolean:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case Null:
		return "NULL"
	default:
		return fmt.Sprintf("<%s>", v.kind)
	}
}

func (v Value) GoString() string {
	return fmt.Sprintf("Value{%s %s}", v.kind, v.Render())
}

var truthyStrings = map[string]bool{"true": true, "t": true}
var falsyStrings = map[string]bool{"false": true, "f": true}

func parseBoolString(s string) (bool, bool) {
	low := strings.ToLower(s)
	if truthyStrings[low] {
		return true, true
	}
	if falsyStrings[low] {
		return false, true
	}
	return false, false
}
