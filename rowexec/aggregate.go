package rowexec

import (
	"io"

	"github.com/mitchellh/hashstructure"

	"github.com/quilldb/quill/expression"
	"github.com/quilldb/quill/expression/aggregation"
	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/types"
)

// boundAggregateCall is one type-checked `fn_name(args)` from an Aggregate
// plan node.
type boundAggregateCall struct {
	overload *aggregation.Overload
	args     []expression.Expression
}

// aggregateBucket is one group's running state: the group key (kept for
// materialization) and one accumulator State per aggregate call.
type aggregateBucket struct {
	key   []types.Value
	state []aggregation.State
}

// hashAggregateExecutor drains its child completely on the first Next,
// bucketing rows by their evaluated group-by key. Buckets are hashed (via
// each value's exported ValueKey projection) for candidate-bucket lookup
// and then resolved exactly via types.Value.Equal, so the hash narrows the
// search but never decides equality on its own: NaN equals itself, +0 and
// -0 are distinct, and Null equals Null.
type hashAggregateExecutor struct {
	groupBy []expression.Expression
	calls   []*boundAggregateCall
	input   Executor

	drained bool
	results []types.Row
	idx     int
}

func newHashAggregateExecutor(groupBy []expression.Expression, calls []*boundAggregateCall, input Executor) *hashAggregateExecutor {
	return &hashAggregateExecutor{groupBy: groupBy, calls: calls, input: input}
}

func (e *hashAggregateExecutor) Next(ctx *sql.Context) (types.Row, error) {
	if !e.drained {
		if err := e.drain(ctx); err != nil {
			return nil, err
		}
	}
	if e.idx >= len(e.results) {
		return nil, io.EOF
	}
	row := e.results[e.idx]
	e.idx++
	return row, nil
}

func (e *hashAggregateExecutor) Close(ctx *sql.Context) error { return e.input.Close(ctx) }

func (e *hashAggregateExecutor) drain(ctx *sql.Context) error {
	e.drained = true

	buckets := map[uint64][]*aggregateBucket{}
	order := []uint64{}

	ensureBucket := func(key []types.Value) *aggregateBucket {
		keys := make([]types.ValueKey, len(key))
		for i, v := range key {
			keys[i] = v.Key()
		}
		hash, err := hashstructure.Hash(keys, nil)
		if err != nil {
			hash = 0
		}
		for _, b := range buckets[hash] {
			if sameKey(b.key, key) {
				return b
			}
		}
		b := &aggregateBucket{key: key, state: make([]aggregation.State, len(e.calls))}
		for i, c := range e.calls {
			b.state[i] = c.overload.DefaultState()
		}
		if _, seen := buckets[hash]; !seen {
			order = append(order, hash)
		}
		buckets[hash] = append(buckets[hash], b)
		return b
	}

	// Scalar aggregation (empty group_by) always has exactly one bucket,
	// even over zero input rows.
	var scalarBucket *aggregateBucket
	if len(e.groupBy) == 0 {
		scalarBucket = ensureBucket(nil)
	}

	for {
		row, err := e.input.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		var bucket *aggregateBucket
		if scalarBucket != nil {
			bucket = scalarBucket
		} else {
			key := make([]types.Value, len(e.groupBy))
			for i, g := range e.groupBy {
				v, err := g.Eval(row)
				if err != nil {
					return err
				}
				key[i] = v
			}
			bucket = ensureBucket(key)
		}

		for i, c := range e.calls {
			args := make([]types.Value, len(c.args))
			for j, a := range c.args {
				v, err := a.Eval(row)
				if err != nil {
					return err
				}
				args[j] = v
			}
			bucket.state[i] = c.overload.Accumulate(args, bucket.state[i])
		}
	}

	var out []types.Row
	emit := func(b *aggregateBucket) {
		row := make(types.Row, 0, len(b.key)+len(e.calls))
		row = append(row, b.key...)
		for i, c := range e.calls {
			row = append(row, c.overload.Finalize(b.state[i]))
		}
		out = append(out, row)
	}

	if scalarBucket != nil {
		emit(scalarBucket)
	} else {
		for _, hash := range order {
			for _, b := range buckets[hash] {
				emit(b)
			}
		}
	}
	e.results = out
	return nil
}

func sameKey(a, b []types.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
