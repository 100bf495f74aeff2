package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quilldb/quill/ast"
	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/types"
)

func mustExecute(t *testing.T, s *Session, stmt ast.Statement) sql.QueryResult {
	t.Helper()
	result, err := s.ExecuteStatement(stmt)
	require.NoError(t, err)
	return result
}

func createAndPopulateT(t *testing.T, s *Session) {
	t.Helper()
	mustExecute(t, s, &ast.CreateTable{
		Table:   "t",
		Columns: []ast.ColumnDef{{Name: "a", DataType: ast.ColInt}},
	})
	mustExecute(t, s, &ast.Insert{
		Table: ast.TableName{Table: "t"},
		Rows: [][]ast.Expr{
			{&ast.Literal{Value: types.NewInt(1)}},
			{&ast.Literal{Value: types.NewInt(2)}},
			{&ast.Literal{Value: types.NewInt(3)}},
		},
	})
}

func gt(col string, n int64) *ast.FuncCall {
	return &ast.FuncCall{Name: ">", Args: []ast.Expr{
		&ast.ColumnRef{Parts: []string{col}},
		&ast.Literal{Value: types.NewInt(n)},
	}}
}

// TestFilteredProjectionAppliesExpressionToEachRow covers a projection
// expression (a+a) over rows surviving a WHERE filter.
func TestFilteredProjectionAppliesExpressionToEachRow(t *testing.T) {
	require := require.New(t)
	s := New(nil)
	createAndPopulateT(t, s)

	result := mustExecute(t, s, &ast.Select{
		SelectList: []ast.SelectItem{{Expr: &ast.FuncCall{Name: "+", Args: []ast.Expr{
			&ast.ColumnRef{Parts: []string{"a"}},
			&ast.ColumnRef{Parts: []string{"a"}},
		}}}},
		From:  []ast.TableExpr{&ast.TableName{Table: "t"}},
		Where: gt("a", 1),
	})

	require.Equal(sql.Query, result.Kind)
	require.Equal([]types.Row{
		types.NewRow(types.NewInt(4)),
		types.NewRow(types.NewInt(6)),
	}, result.Data)
}

// TestScalarAggregationOverWholeTable covers count/sum/avg/min/max with no
// GROUP BY, collapsing the whole table into a single output row.
func TestScalarAggregationOverWholeTable(t *testing.T) {
	require := require.New(t)
	s := New(nil)
	createAndPopulateT(t, s)

	col := func(name string) *ast.ColumnRef { return &ast.ColumnRef{Parts: []string{name}} }
	result := mustExecute(t, s, &ast.Select{
		SelectList: []ast.SelectItem{
			{Expr: &ast.FuncCall{Name: "count", Star: true}},
			{Expr: &ast.FuncCall{Name: "sum", Args: []ast.Expr{col("a")}}},
			{Expr: &ast.FuncCall{Name: "avg", Args: []ast.Expr{col("a")}}},
			{Expr: &ast.FuncCall{Name: "min", Args: []ast.Expr{col("a")}}},
			{Expr: &ast.FuncCall{Name: "max", Args: []ast.Expr{col("a")}}},
		},
		From: []ast.TableExpr{&ast.TableName{Table: "t"}},
	})

	require.Len(result.Data, 1)
	require.Equal(types.NewRow(
		types.NewInt(3), types.NewInt(6), types.NewFloat(2.0), types.NewInt(1), types.NewInt(3),
	), result.Data[0])
}

// TestGroupByAggregationProducesOneRowPerDistinctKey covers GROUP BY with a
// sum aggregate, one output row per distinct group key.
func TestGroupByAggregationProducesOneRowPerDistinctKey(t *testing.T) {
	require := require.New(t)
	s := New(nil)

	mustExecute(t, s, &ast.CreateTable{
		Table: "u",
		Columns: []ast.ColumnDef{
			{Name: "g", DataType: ast.ColVarchar},
			{Name: "v", DataType: ast.ColInt},
		},
	})
	mustExecute(t, s, &ast.Insert{
		Table: ast.TableName{Table: "u"},
		Rows: [][]ast.Expr{
			{&ast.Literal{Value: types.NewString("x")}, &ast.Literal{Value: types.NewInt(1)}},
			{&ast.Literal{Value: types.NewString("x")}, &ast.Literal{Value: types.NewInt(2)}},
			{&ast.Literal{Value: types.NewString("y")}, &ast.Literal{Value: types.NewInt(10)}},
		},
	})

	result := mustExecute(t, s, &ast.Select{
		SelectList: []ast.SelectItem{
			{Expr: &ast.ColumnRef{Parts: []string{"g"}}},
			{Expr: &ast.FuncCall{Name: "sum", Args: []ast.Expr{&ast.ColumnRef{Parts: []string{"v"}}}}},
		},
		From:    []ast.TableExpr{&ast.TableName{Table: "u"}},
		GroupBy: []ast.Expr{&ast.ColumnRef{Parts: []string{"g"}}},
	})

	require.Len(result.Data, 2)
	byGroup := map[string]int64{}
	for _, row := range result.Data {
		byGroup[row[0].String()] = row[1].Int()
	}
	require.Equal(map[string]int64{"x": 3, "y": 10}, byGroup)
}

// TestCrossJoinCardinalityIsProductOfInputSizes covers a two-table cross
// join producing every left/right row combination exactly once.
func TestCrossJoinCardinalityIsProductOfInputSizes(t *testing.T) {
	require := require.New(t)
	s := New(nil)

	mustExecute(t, s, &ast.CreateTable{Table: "a", Columns: []ast.ColumnDef{{Name: "x", DataType: ast.ColInt}}})
	mustExecute(t, s, &ast.CreateTable{Table: "b", Columns: []ast.ColumnDef{{Name: "y", DataType: ast.ColInt}}})
	mustExecute(t, s, &ast.Insert{Table: ast.TableName{Table: "a"}, Rows: [][]ast.Expr{
		{&ast.Literal{Value: types.NewInt(1)}}, {&ast.Literal{Value: types.NewInt(2)}},
	}})
	mustExecute(t, s, &ast.Insert{Table: ast.TableName{Table: "b"}, Rows: [][]ast.Expr{
		{&ast.Literal{Value: types.NewInt(10)}}, {&ast.Literal{Value: types.NewInt(20)}},
	}})

	result := mustExecute(t, s, &ast.Select{
		SelectList: []ast.SelectItem{{Wildcard: true}},
		From: []ast.TableExpr{
			&ast.Join{Left: &ast.TableName{Table: "a"}, Right: &ast.TableName{Table: "b"}, Kind: ast.CrossJoin},
		},
	})

	require.Len(result.Data, 4)
	seen := map[[2]int64]bool{}
	for _, row := range result.Data {
		seen[[2]int64{row[0].Int(), row[1].Int()}] = true
	}
	require.Len(seen, 4)
}

// TestEqualsNullNeverMatches covers `= NULL` in a WHERE clause never
// matching any row: the comparison yields Null, which the filter treats as
// false.
func TestEqualsNullNeverMatches(t *testing.T) {
	require := require.New(t)
	s := New(nil)
	createAndPopulateT(t, s)

	result := mustExecute(t, s, &ast.Select{
		SelectList: []ast.SelectItem{{Expr: &ast.ColumnRef{Parts: []string{"a"}}}},
		From:       []ast.TableExpr{&ast.TableName{Table: "t"}},
		Where: &ast.FuncCall{Name: "=", Args: []ast.Expr{
			&ast.ColumnRef{Parts: []string{"a"}},
			&ast.Literal{Value: types.NewNull()},
		}},
	})
	require.Empty(result.Data)
}

// TestExplainRendersIndentedPlanTree covers EXPLAIN's output shape: a
// Project over a Filter over a Get, indented one level per depth.
func TestExplainRendersIndentedPlanTree(t *testing.T) {
	require := require.New(t)
	s := New(nil)
	createAndPopulateT(t, s)

	result := mustExecute(t, s, &ast.Explain{Inner: &ast.Select{
		SelectList: []ast.SelectItem{{Expr: &ast.ColumnRef{Parts: []string{"a"}}}},
		From:       []ast.TableExpr{&ast.TableName{Table: "t"}},
		Where:      gt("a", 1),
	}})

	require.Len(result.Data, 1)
	text := result.Data[0][0].String()
	require.True(strings.HasPrefix(text, "Project:"))
	require.Contains(text, "\n    Filter:")
	require.Contains(text, "Get: default.t")
}

// TestInsertThenScanRoundTrip covers rows inserted across multiple columns
// coming back out of a full-table scan in insertion order.
func TestInsertThenScanRoundTrip(t *testing.T) {
	require := require.New(t)
	s := New(nil)

	mustExecute(t, s, &ast.CreateTable{
		Table: "t",
		Columns: []ast.ColumnDef{
			{Name: "a", DataType: ast.ColInt},
			{Name: "b", DataType: ast.ColVarchar},
		},
	})
	mustExecute(t, s, &ast.Insert{
		Table: ast.TableName{Table: "t"},
		Rows: [][]ast.Expr{
			{&ast.Literal{Value: types.NewInt(1)}, &ast.Literal{Value: types.NewString("x")}},
			{&ast.Literal{Value: types.NewInt(2)}, &ast.Literal{Value: types.NewString("y")}},
		},
	})

	result := mustExecute(t, s, &ast.Select{
		SelectList: []ast.SelectItem{{Wildcard: true}},
		From:       []ast.TableExpr{&ast.TableName{Table: "t"}},
	})

	require.Equal([]types.Row{
		types.NewRow(types.NewInt(1), types.NewString("x")),
		types.NewRow(types.NewInt(2), types.NewString("y")),
	}, result.Data)
}

func TestUseSwitchesCurrentSchema(t *testing.T) {
	require := require.New(t)
	s := New(nil)

	mustExecute(t, s, &ast.CreateSchema{Name: "other"})
	mustExecute(t, s, &ast.Use{Schema: "other"})
	require.Equal("other", s.Ctx.CurrentSchema)

	mustExecute(t, s, &ast.CreateTable{Table: "t2", Columns: []ast.ColumnDef{{Name: "a", DataType: ast.ColInt}}})
	_, err := s.Ctx.Catalog.Table("other", "t2")
	require.NoError(err)
}

func TestShowTablesListsTablesInCreationOrder(t *testing.T) {
	require := require.New(t)
	s := New(nil)

	mustExecute(t, s, &ast.CreateTable{Table: "zeta", Columns: []ast.ColumnDef{{Name: "a", DataType: ast.ColInt}}})
	mustExecute(t, s, &ast.CreateTable{Table: "alpha", Columns: []ast.ColumnDef{{Name: "a", DataType: ast.ColInt}}})

	result := mustExecute(t, s, &ast.ShowTables{})
	require.Equal(sql.Execute, result.Kind)
	require.Equal([]types.Row{
		types.NewRow(types.NewString("zeta")),
		types.NewRow(types.NewString("alpha")),
	}, result.Data)
}
