// Command shell is the minimal front-end the core's query pipeline plugs
// into. Since no SQL lexer/parser is in scope, it drives the engine with a
// small fixed demo script of already-built ast.Statement values rather
// than parsing free-form text, while keeping an interactive banner/prompt
// shape on stdout.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/quilldb/quill/ast"
	"github.com/quilldb/quill/engine"
	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/types"
)

type options struct {
	Schema   string `long:"schema" description:"initial current schema" default:"default"`
	LogLevel string `long:"log-level" description:"logrus level (debug, info, warn, error)" default:"warn"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}

	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(opts.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	session := engine.New(logger)
	session.Ctx.CurrentSchema = opts.Schema

	fmt.Print("Welcome to quill!\n")
	for _, line := range demoScript() {
		fmt.Print("you=# ")
		fmt.Println(line.text)

		result, err := session.ExecuteStatement(line.stmt)
		if err != nil {
			fmt.Println(err.Error())
			fmt.Println()
			continue
		}
		printResult(result)
		fmt.Println()
	}
}

// printResult formats a QueryResult the way the (external) wire/shell layer
// would: each Datum rendered via its text form, one row per line,
// space-separated columns.
func printResult(result sql.QueryResult) {
	if result.Kind == sql.Execute && len(result.Data) == 0 {
		fmt.Print("OK")
		return
	}
	for i, row := range result.Data {
		if i > 0 {
			fmt.Print("\n")
		}
		for j, v := range row {
			if j > 0 {
				fmt.Print(" ")
			}
			fmt.Print(v.Render())
		}
	}
}

type scriptLine struct {
	text string
	stmt ast.Statement
}

// demoScript creates a table, inserts rows, and runs a filtered projection
// (plus its EXPLAIN) over it, using directly-constructed ast.Statement
// values in place of parsed SQL text.
func demoScript() []scriptLine {
	return []scriptLine{
		{
			text: "CREATE TABLE t (a int)",
			stmt: &ast.CreateTable{
				Table:   "t",
				Columns: []ast.ColumnDef{{Name: "a", DataType: ast.ColInt}},
			},
		},
		{
			text: "INSERT INTO t VALUES (1), (2), (3)",
			stmt: &ast.Insert{
				Table: ast.TableName{Table: "t"},
				Rows: [][]ast.Expr{
					{&ast.Literal{Value: types.NewInt(1)}},
					{&ast.Literal{Value: types.NewInt(2)}},
					{&ast.Literal{Value: types.NewInt(3)}},
				},
			},
		},
		{
			text: "SELECT a+a FROM t WHERE a>1",
			stmt: &ast.Select{
				SelectList: []ast.SelectItem{{
					Expr: &ast.FuncCall{Name: "+", Args: []ast.Expr{
						&ast.ColumnRef{Parts: []string{"a"}},
						&ast.ColumnRef{Parts: []string{"a"}},
					}},
				}},
				From:  []ast.TableExpr{&ast.TableName{Table: "t"}},
				Where: &ast.FuncCall{Name: ">", Args: []ast.Expr{
					&ast.ColumnRef{Parts: []string{"a"}},
					&ast.Literal{Value: types.NewInt(1)},
				}},
			},
		},
		{
			text: "EXPLAIN SELECT a FROM t WHERE a>1",
			stmt: &ast.Explain{Inner: &ast.Select{
				SelectList: []ast.SelectItem{{Expr: &ast.ColumnRef{Parts: []string{"a"}}}},
				From:       []ast.TableExpr{&ast.TableName{Table: "t"}},
				Where: &ast.FuncCall{Name: ">", Args: []ast.Expr{
					&ast.ColumnRef{Parts: []string{"a"}},
					&ast.Literal{Value: types.NewInt(1)},
				}},
			}},
		},
	}
}
