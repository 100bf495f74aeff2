package rowexec

import (
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quilldb/quill/expression"
	"github.com/quilldb/quill/expression/aggregation"
	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/types"
)

func drain(t *testing.T, ctx *sql.Context, e Executor) []types.Row {
	t.Helper()
	var rows []types.Row
	for {
		row, err := e.Next(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}
	require.NoError(t, e.Close(ctx))
	return rows
}

func sumIntOverload() *aggregation.Overload {
	for _, o := range aggregation.Default().Candidates("sum") {
		if o.ArgTypes[0] == types.Int {
			return o
		}
	}
	panic("no sum(int) overload")
}

// TestHashAggregateScalarEmitsOneRowOverZeroInput guards scalar aggregation
// (no GROUP BY) always emitting exactly one row, even when no input rows are
// ever scanned.
func TestHashAggregateScalarEmitsOneRowOverZeroInput(t *testing.T) {
	ctx := sql.NewContext()
	input := newValuesExecutor(nil)
	calls := []*boundAggregateCall{{overload: sumIntOverload(), args: []expression.Expression{expression.NewColumnExpr(0, types.Int)}}}

	e := newHashAggregateExecutor(nil, calls, input)
	rows := drain(t, ctx, e)

	require.Len(t, rows, 1)
	require.True(t, rows[0][0].IsNull(), "sum over zero rows finalizes to null")
}

// TestHashAggregateGroupsByKey guards the bucket-per-distinct-key behavior
// of grouped aggregation.
func TestHashAggregateGroupsByKey(t *testing.T) {
	ctx := sql.NewContext()
	input := newValuesExecutor([]types.Row{
		types.NewRow(types.NewString("x"), types.NewInt(1)),
		types.NewRow(types.NewString("x"), types.NewInt(2)),
		types.NewRow(types.NewString("y"), types.NewInt(10)),
	})
	groupBy := []expression.Expression{expression.NewColumnExpr(0, types.String)}
	calls := []*boundAggregateCall{{overload: sumIntOverload(), args: []expression.Expression{expression.NewColumnExpr(1, types.Int)}}}

	e := newHashAggregateExecutor(groupBy, calls, input)
	rows := drain(t, ctx, e)

	require.Len(t, rows, 2)
	byKey := map[string]int64{}
	for _, row := range rows {
		byKey[row[0].String()] = row[1].Int()
	}
	require.Equal(t, map[string]int64{"x": 3, "y": 10}, byKey)
}

// TestHashAggregateDistinguishesNegativeZero guards the Datum equality law:
// hashstructure may place +0 and -0 in the same candidate bucket, but the
// exact types.Value.Equal check must keep them separate.
func TestHashAggregateDistinguishesNegativeZero(t *testing.T) {
	ctx := sql.NewContext()
	input := newValuesExecutor([]types.Row{
		types.NewRow(types.NewFloat(0)),
		types.NewRow(types.NewFloat(math.Copysign(0, -1))),
	})
	groupBy := []expression.Expression{expression.NewColumnExpr(0, types.Float)}

	e := newHashAggregateExecutor(groupBy, nil, input)
	rows := drain(t, ctx, e)

	require.Len(t, rows, 2, "+0 and -0 must form distinct groups")
}
