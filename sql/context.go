// Package sql ties together the catalog and row store into the
// QueryContext every bound Plan executes against, plus the client-facing
// FieldInfo/QueryResult shapes.
package sql

import (
	"github.com/quilldb/quill/catalog"
	"github.com/quilldb/quill/storage"
)

// Context is the per-session state a Plan executes against: {Catalog,
// StorageManager, current_schema}. It is exclusively owned by one session
// and mutated in place while rowexec.Build constructs the executors for
// Use, DDL and DML plans; it must never be shared across sessions.
type Context struct {
	Catalog       *catalog.Catalog
	Storage       *storage.Manager
	CurrentSchema string
}

// NewContext returns a Context with a fresh, pre-populated Catalog and an
// empty StorageManager, current schema set to catalog.DefaultSchema.
func NewContext() *Context {
	return &Context{
		Catalog:       catalog.New(),
		Storage:       storage.NewManager(),
		CurrentSchema: catalog.DefaultSchema,
	}
}

// ResolveSchema returns name if non-empty, else the context's current
// schema. Used wherever the binder accepts an optionally-qualified name.
func (c *Context) ResolveSchema(name string) string {
	if name == "" {
		return c.CurrentSchema
	}
	return name
}
