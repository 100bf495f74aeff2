package function

import "github.com/quilldb/quill/types"

// registerBuiltins installs every built-in scalar overload. All are
// null-passthrough by construction (see Registry.Register).
func registerBuiltins(r *Registry) {
	registerArithmetic(r)
	registerComparisons(r)
	registerCasts(r)
}

func registerArithmetic(r *Registry) {
	r.Register("+", []types.Type{types.Int, types.Int}, types.Int, func(args []types.Value) types.Value {
		return types.NewInt(args[0].Int() + args[1].Int())
	})
	r.Register("+", []types.Type{types.Float, types.Float}, types.Float, func(args []types.Value) types.Value {
		return types.NewFloat(args[0].Float() + args[1].Float())
	})
	r.Register("-", []types.Type{types.Int, types.Int}, types.Int, func(args []types.Value) types.Value {
		return types.NewInt(args[0].Int() - args[1].Int())
	})
	r.Register("-", []types.Type{types.Float, types.Float}, types.Float, func(args []types.Value) types.Value {
		return types.NewFloat(args[0].Float() - args[1].Float())
	})
}

func registerComparisons(r *Registry) {
	cmpTypes := []types.Type{types.Int, types.Float, types.String}
	for _, t := range cmpTypes {
		t := t
		r.Register("=", []types.Type{t, t}, types.Boolean, func(args []types.Value) types.Value {
			return types.NewBoolean(compareValues(t, args[0], args[1]) == 0)
		})
		r.Register("<>", []types.Type{t, t}, types.Boolean, func(args []types.Value) types.Value {
			return types.NewBoolean(compareValues(t, args[0], args[1]) != 0)
		})
		r.Register("<", []types.Type{t, t}, types.Boolean, func(args []types.Value) types.Value {
			return types.NewBoolean(compareValues(t, args[0], args[1]) < 0)
		})
		r.Register("<=", []types.Type{t, t}, types.Boolean, func(args []types.Value) types.Value {
			return types.NewBoolean(compareValues(t, args[0], args[1]) <= 0)
		})
		r.Register(">", []types.Type{t, t}, types.Boolean, func(args []types.Value) types.Value {
			return types.NewBoolean(compareValues(t, args[0], args[1]) > 0)
		})
		r.Register(">=", []types.Type{t, t}, types.Boolean, func(args []types.Value) types.Value {
			return types.NewBoolean(compareValues(t, args[0], args[1]) >= 0)
		})
	}
	r.Register("=", []types.Type{types.Boolean, types.Boolean}, types.Boolean, func(args []types.Value) types.Value {
		return types.NewBoolean(args[0].Bool() == args[1].Bool())
	})
	r.Register("<>", []types.Type{types.Boolean, types.Boolean}, types.Boolean, func(args []types.Value) types.Value {
		return types.NewBoolean(args[0].Bool() != args[1].Bool())
	})
}

// compareValues returns <0, 0, >0 comparing a and b, both of type t.
func compareValues(t types.Type, a, b types.Value) int {
	switch t {
	case types.Int:
		switch {
		case a.Int() < b.Int():
			return -1
		case a.Int() > b.Int():
			return 1
		default:
			return 0
		}
	case types.Float:
		switch {
		case a.Float() < b.Float():
			return -1
		case a.Float() > b.Float():
			return 1
		default:
			return 0
		}
	case types.String:
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		default:
			return 0
		}
	default:
		return 0
	}
}

func registerCasts(r *Registry) {
	r.Register("to_int", []types.Type{types.Any}, types.Int, func(args []types.Value) types.Value {
		return args[0].Cast(types.Int)
	})
	r.Register("to_float", []types.Type{types.Any}, types.Float, func(args []types.Value) types.Value {
		return args[0].Cast(types.Float)
	})
	r.Register("to_string", []types.Type{types.Any}, types.String, func(args []types.Value) types.Value {
		return args[0].Cast(types.String)
	})
	r.Register("to_boolean", []types.Type{types.Any}, types.Boolean, func(args []types.Value) types.Value {
		return args[0].Cast(types.Boolean)
	})
}

// CastFunctionName returns the name of the builtin cast function producing
// target, used by the type checker when it must insert an implicit cast.
func CastFunctionName(target types.Type) (string, bool) {
	switch target {
	case types.Int:
		return "to_int", true
	case types.Float:
		return "to_float", true
	case types.String:
		return "to_string", true
	case types.Boolean:
		return "to_boolean", true
	default:
		return "", false
	}
}
