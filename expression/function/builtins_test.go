package function

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quilldb/quill/types"
)

// TestIntegerSubtractActuallySubtracts guards against a tempting copy-paste
// mistake: the integer "-" overload must subtract, not add.
func TestIntegerSubtractActuallySubtracts(t *testing.T) {
	require := require.New(t)

	overload := Default().Candidates("-")[0]
	require.Equal(types.NewInt(3), overload.Behavior([]types.Value{types.NewInt(5), types.NewInt(2)}))
}

func TestNullPassthrough(t *testing.T) {
	require := require.New(t)

	overload := Default().Candidates("+")[0]
	result := overload.Behavior([]types.Value{types.NewInt(1), types.NewNull()})
	require.True(result.IsNull())
}

func TestComparisonOverloads(t *testing.T) {
	require := require.New(t)

	eq := Default().Candidates("=")
	var stringEq *Overload
	for _, o := range eq {
		if o.ArgTypes[0] == types.String {
			stringEq = o
		}
	}
	require.NotNil(stringEq)
	require.Equal(types.NewBoolean(true), stringEq.Behavior([]types.Value{types.NewString("a"), types.NewString("a")}))
	require.Equal(types.NewBoolean(false), stringEq.Behavior([]types.Value{types.NewString("a"), types.NewString("b")}))
}

func TestCastFunctionNameCoversConcreteTypes(t *testing.T) {
	require := require.New(t)

	for _, tc := range []struct {
		target types.Type
		name   string
	}{
		{types.Int, "to_int"},
		{types.Float, "to_float"},
		{types.String, "to_string"},
		{types.Boolean, "to_boolean"},
	} {
		name, ok := CastFunctionName(tc.target)
		require.True(ok)
		require.Equal(tc.name, name)
	}

	_, ok := CastFunctionName(types.Null)
	require.False(ok)
}
