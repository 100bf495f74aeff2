package types

import "strconv"

// CanCast reports whether an implicit coercion from source to target is
// permitted. It is used during overload resolution, independent of whether
// any particular value will parse successfully at runtime (a String→Int
// cast is always *permitted*; it may still yield Null at runtime on an
// unparsable string).
func CanCast(source, target Type) bool {
	if source == target {
		return true
	}
	if target == Any {
		return true
	}
	if source == Null {
		return target.IsConcrete()
	}
	switch target {
	case String:
		return source.IsConcrete()
	}
	switch source {
	case Int:
		return target == Float || target == Boolean
	case Float:
		return target == Int
	case Boolean:
		return target == Int
	case String:
		return target == Boolean || target == Int || target == Float
	}
	return false
}

// Cast implicitly coerces v to target per the cast table. Failed string
// parses yield Null, never an error; Null casts to Null of any concrete
// target. Casting to a type outside the lattice of concrete types (Any,
// Never) is a programming error in the caller, not a runtime condition, and
// panics.
func (v Value) Cast(target Type) Value {
	if !target.IsConcrete() {
		panic("types: Cast to non-concrete target " + target.String())
	}
	if v.kind == target {
		return v
	}
	if v.kind == Null {
		return NewNull()
	}

	switch target {
	case String:
		return NewString(v.Render())
	case Boolean:
		switch v.kind {
		case Int:
			return NewBoolean(v.i != 0)
		case String:
			b, ok := parseBoolString(v.s)
			if !ok {
				return NewNull()
			}
			return NewBoolean(b)
		}
	case Int:
		switch v.kind {
		case Float:
			return NewInt(int64(v.f))
		case Boolean:
			if v.b {
				return NewInt(1)
			}
			return NewInt(0)
		case String:
			n, err := strconv.ParseInt(v.s, 10, 64)
			if err != nil {
				return NewNull()
			}
			return NewInt(n)
		}
	case Float:
		switch v.kind {
		case Int:
			return NewFloat(float64(v.i))
		case String:
			f, err := strconv.ParseFloat(v.s, 64)
			if err != nil {
				return NewNull()
			}
			return NewFloat(f)
		}
	}

	// Every concrete pair reachable per CanCast is handled above; anything
	// else is not a permitted coercion.
	return NewNull()
}
