package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueEqualityLaw(t *testing.T) {
	require := require.New(t)

	nan := NewFloat(math.NaN())
	require.True(nan.Equal(nan), "NaN must equal itself")

	posZero := NewFloat(0)
	negZero := NewFloat(math.Copysign(0, -1))
	require.False(posZero.Equal(negZero), "+0 and -0 must be distinct")

	require.True(NewNull().Equal(NewNull()))

	require.False(NewInt(1).Equal(NewString("1")), "cross-variant comparisons are false")
}

func TestValueCastIdempotence(t *testing.T) {
	require := require.New(t)

	values := []Value{NewInt(42), NewFloat(3.5), NewString("hi"), NewBoolean(true), NewNull()}
	for _, v := range values {
		require.True(v.Cast(v.Type()).Equal(v))
	}
}

func TestCastStringToBoolean(t *testing.T) {
	require := require.New(t)

	require.Equal(NewBoolean(true), NewString("true").Cast(Boolean))
	require.Equal(NewBoolean(true), NewString("T").Cast(Boolean))
	require.Equal(NewBoolean(false), NewString("false").Cast(Boolean))
	require.True(NewString("nope").Cast(Boolean).IsNull(), "unparsable strings cast to Null, never error")
}

func TestCastNullToConcreteIsNull(t *testing.T) {
	require := require.New(t)
	require.True(NewNull().Cast(Int).IsNull())
	require.True(NewNull().Cast(String).IsNull())
}

func TestValueKeyDistinguishesZeroSign(t *testing.T) {
	require := require.New(t)
	posZero := NewFloat(0)
	negZero := NewFloat(math.Copysign(0, -1))
	require.NotEqual(posZero.Key(), negZero.Key())
}
