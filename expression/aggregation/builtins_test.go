package aggregation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quilldb/quill/types"
)

func accumulateAll(o *Overload, rows [][]types.Value) types.Value {
	state := o.DefaultState()
	for _, args := range rows {
		state = o.Accumulate(args, state)
	}
	return o.Finalize(state)
}

func TestCountOfArgumentIgnoresNulls(t *testing.T) {
	require := require.New(t)

	countAny := Default().Candidates("count")[1] // count(Any)
	result := accumulateAll(countAny, [][]types.Value{
		{types.NewInt(1)},
		{types.NewNull()},
		{types.NewInt(3)},
	})
	require.Equal(types.NewInt(2), result, "null-skip must not count a null argument")
}

func TestSumStartsNullUntilFirstValue(t *testing.T) {
	require := require.New(t)

	sumInt := Default().Candidates("sum")[0]
	require.True(sumInt.Finalize(sumInt.DefaultState()).IsNull())

	result := accumulateAll(sumInt, [][]types.Value{{types.NewInt(2)}, {types.NewInt(4)}})
	require.Equal(types.NewInt(6), result)
}

// TestAvgDividesAtFinalize guards avg's accumulator dividing sum by count
// only once, at Finalize, rather than on every accumulated row.
func TestAvgDividesAtFinalize(t *testing.T) {
	require := require.New(t)

	avgInt := Default().Candidates("avg")[0]
	result := accumulateAll(avgInt, [][]types.Value{{types.NewInt(1)}, {types.NewInt(2)}, {types.NewInt(3)}})
	require.Equal(types.NewFloat(2.0), result)
}

func TestAvgOfEmptyIsNull(t *testing.T) {
	require := require.New(t)
	avgInt := Default().Candidates("avg")[0]
	require.True(avgInt.Finalize(avgInt.DefaultState()).IsNull())
}

func TestMinMax(t *testing.T) {
	require := require.New(t)

	var minInt, maxInt *Overload
	for _, o := range Default().Candidates("min") {
		if o.ArgTypes[0] == types.Int {
			minInt = o
		}
	}
	for _, o := range Default().Candidates("max") {
		if o.ArgTypes[0] == types.Int {
			maxInt = o
		}
	}
	require.NotNil(minInt)
	require.NotNil(maxInt)

	rows := [][]types.Value{{types.NewInt(5)}, {types.NewInt(1)}, {types.NewInt(3)}}
	require.Equal(types.NewInt(1), accumulateAll(minInt, rows))
	require.Equal(types.NewInt(5), accumulateAll(maxInt, rows))
}
