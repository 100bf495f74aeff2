package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowCloneIsIndependent(t *testing.T) {
	require := require.New(t)

	r := NewRow(NewInt(1), NewInt(2))
	clone := r.Clone()
	clone[0] = NewInt(99)

	require.Equal(NewInt(1), r[0])
	require.Equal(NewInt(99), clone[0])
}

func TestRowExtend(t *testing.T) {
	require := require.New(t)

	r := NewRow(NewInt(1))
	extended := r.Extend(NewString("x"), NewBoolean(true))
	require.Equal(NewRow(NewInt(1), NewString("x"), NewBoolean(true)), extended)
	require.Len(r, 1, "Extend must not mutate the receiver")
}

func TestRowProjectReorders(t *testing.T) {
	require := require.New(t)

	r := NewRow(NewInt(1), NewInt(2), NewInt(3))
	require.Equal(NewRow(NewInt(3), NewInt(1)), r.Project([]int{2, 0}))
}

func TestSchemaProjectAndExtend(t *testing.T) {
	require := require.New(t)

	s := Schema{
		{Name: "a", Type: Int},
		{Name: "b", Type: String},
	}
	require.Equal([]Type{Int, String}, s.Types())

	projected := s.Project([]int{1})
	require.Equal("b", projected[0].Name)

	extended := s.Extend(&Column{Name: "c", Type: Boolean})
	require.Len(extended, 3)
	require.Len(s, 2, "Extend must not mutate the receiver")
}
