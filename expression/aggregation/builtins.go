package aggregation

import "github.com/quilldb/quill/types"

// registerBuiltins installs every built-in aggregate overload.
func registerBuiltins(r *Registry) {
	registerCount(r)
	registerSum(r)
	registerAvg(r)
	registerMinMax(r)
}

type countState struct{ n int64 }

func registerCount(r *Registry) {
	accumulate := func(args []types.Value, state State) State {
		return countState{n: state.(countState).n + 1}
	}
	finalize := func(state State) types.Value { return types.NewInt(state.(countState).n) }
	defaultState := func() State { return countState{} }

	r.Register("count", nil, types.Int, defaultState, accumulate, finalize)
	r.Register("count", []types.Type{types.Any}, types.Int, defaultState, accumulate, finalize)
}

// sumState tracks whether any non-null value has been seen yet; the
// running sum starts Null and becomes zero-of-type on the first non-null
// input.
type sumState struct {
	started bool
	i       int64
	f       float64
}

func registerSum(r *Registry) {
	r.Register("sum", []types.Type{types.Int}, types.Int,
		func() State { return sumState{} },
		func(args []types.Value, state State) State {
			s := state.(sumState)
			return sumState{started: true, i: s.i + args[0].Int()}
		},
		func(state State) types.Value {
			s := state.(sumState)
			if !s.started {
				return types.NewNull()
			}
			return types.NewInt(s.i)
		},
	)
	r.Register("sum", []types.Type{types.Float}, types.Float,
		func() State { return sumState{} },
		func(args []types.Value, state State) State {
			s := state.(sumState)
			return sumState{started: true, f: s.f + args[0].Float()}
		},
		func(state State) types.Value {
			s := state.(sumState)
			if !s.started {
				return types.NewNull()
			}
			return types.NewFloat(s.f)
		},
	)
}

// avgState accumulates a running sum (as float64, widened regardless of
// the argument type) and count; Finalize divides sum by count, so the
// division only happens once, at the end, rather than on every row.
type avgState struct {
	sum   float64
	count int64
}

func registerAvg(r *Registry) {
	finalize := func(state State) types.Value {
		s := state.(avgState)
		if s.count == 0 {
			return types.NewNull()
		}
		return types.NewFloat(s.sum / float64(s.count))
	}
	r.Register("avg", []types.Type{types.Int}, types.Float,
		func() State { return avgState{} },
		func(args []types.Value, state State) State {
			s := state.(avgState)
			return avgState{sum: s.sum + float64(args[0].Int()), count: s.count + 1}
		},
		finalize,
	)
	r.Register("avg", []types.Type{types.Float}, types.Float,
		func() State { return avgState{} },
		func(args []types.Value, state State) State {
			s := state.(avgState)
			return avgState{sum: s.sum + args[0].Float(), count: s.count + 1}
		},
		finalize,
	)
}

type extremumState struct {
	has   bool
	value types.Value
}

func registerMinMax(r *Registry) {
	for _, t := range []types.Type{types.Int, types.Float, types.String} {
		t := t
		r.Register("min", []types.Type{t}, t,
			func() State { return extremumState{} },
			func(args []types.Value, state State) State {
				s := state.(extremumState)
				if !s.has {
					return extremumState{has: true, value: args[0]}
				}
				if less(t, args[0], s.value) {
					return extremumState{has: true, value: args[0]}
				}
				return s
			},
			finalizeExtremum,
		)
		r.Register("max", []types.Type{t}, t,
			func() State { return extremumState{} },
			func(args []types.Value, state State) State {
				s := state.(extremumState)
				if !s.has {
					return extremumState{has: true, value: args[0]}
				}
				if less(t, s.value, args[0]) {
					return extremumState{has: true, value: args[0]}
				}
				return s
			},
			finalizeExtremum,
		)
	}
}

func finalizeExtremum(state State) types.Value {
	s := state.(extremumState)
	if !s.has {
		return types.NewNull()
	}
	return s.value
}

func less(t types.Type, a, b types.Value) bool {
	switch t {
	case types.Int:
		return a.Int() < b.Int()
	case types.Float:
		return a.Float() < b.Float()
	case types.String:
		return a.String() < b.String()
	default:
		return false
	}
}
