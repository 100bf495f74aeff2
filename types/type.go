// Package types implements quill's scalar value and type lattice: the
// tagged Datum variant, the {Int, Float, String, Boolean, Null, Any, Never}
// type lattice, and the implicit cast table that binds them together.
package types

import "fmt"

// Type is one member of the type lattice. Any and Never only ever appear
// during type checking and overload resolution; no runtime Value carries
// them.
type Type int

const (
	Int Type = iota
	Float
	String
	Boolean
	Null
	// Any is the lattice top: it matches every concrete type during
	// overload resolution and is otherwise never the type of a value.
	Any
	// Never is the lattice bottom. It never appears as a parameter or
	// argument type; it exists so callers have a value to return from
	// partial functions that must return a Type.
	Never
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Null:
		return "null"
	case Any:
		return "any"
	case Never:
		return "never"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// IsConcrete reports whether t is a type a runtime Value can actually carry.
func (t Type) IsConcrete() bool {
	switch t {
	case Int, Float, String, Boolean, Null:
		return true
	default:
		return false
	}
}
