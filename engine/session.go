// Package engine implements quill's Session: the orchestrator that drives a
// parsed statement through Bind → Build → pull-to-completion and produces a
// sql.QueryResult.
package engine

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/quilldb/quill/ast"
	"github.com/quilldb/quill/planbuilder"
	"github.com/quilldb/quill/rowexec"
	"github.com/quilldb/quill/sql"
)

// Session owns one QueryContext exclusively; it must never be shared
// across sessions. Every Session is tagged with a UUID carried into its
// log lines.
type Session struct {
	ID     uuid.UUID
	Ctx    *sql.Context
	Logger *logrus.Entry
}

// New returns a Session with a fresh QueryContext and a logger tagged with a
// freshly generated session ID.
func New(logger *logrus.Logger) *Session {
	if logger == nil {
		logger = logrus.New()
	}
	id := uuid.New()
	return &Session{
		ID:     id,
		Ctx:    sql.NewContext(),
		Logger: logger.WithField("session", id.String()),
	}
}

// ExecuteStatement binds, builds, and drains stmt against the session's
// QueryContext. stmt is already-parsed: turning query text into an
// ast.Statement is an external collaborator's job, not this package's.
func (s *Session) ExecuteStatement(stmt ast.Statement) (sql.QueryResult, error) {
	p, scope, err := planbuilder.Bind(s.Ctx, stmt)
	if err != nil {
		s.Logger.WithError(err).Warn("bind failed")
		return sql.QueryResult{}, err
	}
	s.Logger.Debug("bound plan")

	exec, schema, err := rowexec.Build(s.Ctx, p)
	if err != nil {
		s.Logger.WithError(err).Warn("build failed")
		return sql.QueryResult{}, err
	}

	result := sql.QueryResult{Kind: resultKind(stmt)}
	for i := range schema {
		name := schema[i].Name
		if scope != nil && i < len(scope) {
			name = scope[i].Name
		}
		result.Fields = append(result.Fields, sql.NewFieldInfo(name))
	}

	for {
		row, err := exec.Next(s.Ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			exec.Close(s.Ctx)
			s.Logger.WithError(err).Warn("execution failed")
			return sql.QueryResult{}, err
		}
		result.Data = append(result.Data, row)
	}
	if err := exec.Close(s.Ctx); err != nil {
		s.Logger.WithError(err).Warn("close failed")
		return sql.QueryResult{}, err
	}

	if result.Kind == sql.Execute {
		s.Logger.Info("statement completed")
	}
	return result, nil
}

// resultKind classifies stmt: SELECT is Query, everything else is Execute.
func resultKind(stmt ast.Statement) sql.ResultKind {
	if _, ok := stmt.(*ast.Select); ok {
		return sql.Query
	}
	return sql.Execute
}
