package rowexec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/types"
)

// TestNestedLoopJoinProducesCrossProduct guards the join strategy always
// being a left-deep cross product, with join predicates (if any) applied by
// a Filter stacked above rather than by the join itself.
func TestNestedLoopJoinProducesCrossProduct(t *testing.T) {
	ctx := sql.NewContext()
	left := newValuesExecutor([]types.Row{
		types.NewRow(types.NewInt(1)),
		types.NewRow(types.NewInt(2)),
	})
	right := newValuesExecutor([]types.Row{
		types.NewRow(types.NewInt(10)),
		types.NewRow(types.NewInt(20)),
	})

	e, err := newNestedLoopJoinExecutor(ctx, left, right)
	require.NoError(t, err)
	rows := drain(t, ctx, e)

	require.Len(t, rows, 4)
	seen := map[[2]int64]bool{}
	for _, row := range rows {
		seen[[2]int64{row[0].Int(), row[1].Int()}] = true
	}
	require.Len(t, seen, 4)
}

// TestNestedLoopJoinEmptyOuterYieldsNoRows guards the outer-exhaustion path
// when the left (outer, streaming) child has no rows at all.
func TestNestedLoopJoinEmptyOuterYieldsNoRows(t *testing.T) {
	ctx := sql.NewContext()
	left := newValuesExecutor(nil)
	right := newValuesExecutor([]types.Row{types.NewRow(types.NewInt(10))})

	e, err := newNestedLoopJoinExecutor(ctx, left, right)
	require.NoError(t, err)
	rows := drain(t, ctx, e)

	require.Empty(t, rows)
}

// TestNestedLoopJoinEmptyInnerYieldsNoRows guards the per-outer-row
// cursor-reset path when the right (inner, materialized) child is empty.
func TestNestedLoopJoinEmptyInnerYieldsNoRows(t *testing.T) {
	ctx := sql.NewContext()
	left := newValuesExecutor([]types.Row{types.NewRow(types.NewInt(1)), types.NewRow(types.NewInt(2))})
	right := newValuesExecutor(nil)

	e, err := newNestedLoopJoinExecutor(ctx, left, right)
	require.NoError(t, err)
	rows := drain(t, ctx, e)

	require.Empty(t, rows)
}
