// Package catalog implements quill's schema/table dictionary: the mapping
// from schema name to SchemaDefinition, and from SchemaDefinition to its
// ordered TableDefinitions. It owns existence/uniqueness bookkeeping only —
// row storage lives in package storage.
package catalog

import (
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/quilldb/quill/sqlerrors"
	"github.com/quilldb/quill/types"
)

// DefaultSchema is the name of the schema the Catalog is pre-populated
// with.
const DefaultSchema = "default"

// ColumnDefinition describes one table column.
type ColumnDefinition struct {
	Name     string
	Type     types.Type
	Nullable bool
}

// TableDefinition is an ordered list of columns under a name.
type TableDefinition struct {
	Name    string
	Columns []ColumnDefinition
}

// Schema projects t's columns into a types.Schema for the executor
// builder.
func (t *TableDefinition) Schema() types.Schema {
	out := make(types.Schema, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = &types.Column{Name: c.Name, Type: c.Type, Nullable: c.Nullable}
	}
	return out
}

// SchemaDefinition holds an ordered list of TableDefinitions under a schema
// name.
type SchemaDefinition struct {
	Name   string
	tables map[string]*TableDefinition
	order  []string
}

func newSchemaDefinition(name string) *SchemaDefinition {
	return &SchemaDefinition{Name: name, tables: map[string]*TableDefinition{}}
}

// Tables returns the schema's tables in creation order.
func (s *SchemaDefinition) Tables() []*TableDefinition {
	out := make([]*TableDefinition, len(s.order))
	for i, name := range s.order {
		out[i] = s.tables[name]
	}
	return out
}

// Catalog maps schema name to SchemaDefinition. It is created pre-populated
// with an empty schema named "default" and is exclusively owned by one
// session; the mutex below guards against accidental aliasing bugs rather
// than real concurrent access.
type Catalog struct {
	mu      sync.Mutex
	schemas map[string]*SchemaDefinition
	order   []string
}

// New returns a Catalog pre-populated with the "default" schema.
func New() *Catalog {
	c := &Catalog{schemas: map[string]*SchemaDefinition{}}
	c.schemas[DefaultSchema] = newSchemaDefinition(DefaultSchema)
	c.order = append(c.order, DefaultSchema)
	return c
}

// CreateSchema adds a new, empty schema. It is an error if the name is
// already in use.
func (c *Catalog) CreateSchema(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.schemas[name]; ok {
		return sqlerrors.ErrCatalog.New("schema already exists: " + name)
	}
	c.schemas[name] = newSchemaDefinition(name)
	c.order = append(c.order, name)
	return nil
}

// DropSchemas removes schemas. Multiple names may be dropped in one call;
// per §9.D there is no rollback, so every name is attempted and the
// failures (if any) are reported together while successful drops persist.
func (c *Catalog) DropSchemas(names []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var result *multierror.Error
	for _, name := range names {
		if _, ok := c.schemas[name]; !ok {
			result = multierror.Append(result, sqlerrors.ErrCatalog.New("schema does not exist: "+name))
			continue
		}
		delete(c.schemas, name)
		c.order = removeString(c.order, name)
	}
	return result.ErrorOrNil()
}

// Schema looks up a schema by name.
func (c *Catalog) Schema(name string) (*SchemaDefinition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.schemas[name]
	if !ok {
		return nil, sqlerrors.ErrCatalog.New("schema does not exist: " + name)
	}
	return s, nil
}

// SchemaNames returns all schema names in creation order.
func (c *Catalog) SchemaNames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// CreateTable adds table to schemaName. It is an error if the schema is
// missing or the table name is already in use within it.
func (c *Catalog) CreateTable(schemaName string, table *TableDefinition) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.schemas[schemaName]
	if !ok {
		return sqlerrors.ErrCatalog.New("schema does not exist: " + schemaName)
	}
	if _, ok := s.tables[table.Name]; ok {
		return sqlerrors.ErrCatalog.New("table already exists: " + schemaName + "." + table.Name)
	}
	s.tables[table.Name] = table
	s.order = append(s.order, table.Name)
	return nil
}

// QualifiedTable identifies a table in a schema drop/create batch.
type QualifiedTable struct {
	Schema string
	Table  string
}

// DropTables removes tables. As with DropSchemas, every qualified name is
// attempted and failures are aggregated; already-removed tables stay
// removed (§9.D).
func (c *Catalog) DropTables(names []QualifiedTable) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var result *multierror.Error
	for _, n := range names {
		s, ok := c.schemas[n.Schema]
		if !ok {
			result = multierror.Append(result, sqlerrors.ErrCatalog.New("schema does not exist: "+n.Schema))
			continue
		}
		if _, ok := s.tables[n.Table]; !ok {
			result = multierror.Append(result, sqlerrors.ErrCatalog.New("table does not exist: "+n.Schema+"."+n.Table))
			continue
		}
		delete(s.tables, n.Table)
		s.order = removeString(s.order, n.Table)
	}
	return result.ErrorOrNil()
}

// Table looks up a table by schema and table name.
func (c *Catalog) Table(schemaName, tableName string) (*TableDefinition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.schemas[schemaName]
	if !ok {
		return nil, sqlerrors.ErrCatalog.New("schema does not exist: " + schemaName)
	}
	t, ok := s.tables[tableName]
	if !ok {
		return nil, sqlerrors.ErrCatalog.New("table does not exist: " + schemaName + "." + tableName)
	}
	return t, nil
}

// ShowTables returns the table names of schemaName in creation order.
func (c *Catalog) ShowTables(schemaName string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.schemas[schemaName]
	if !ok {
		return nil, sqlerrors.ErrCatalog.New("schema does not exist: " + schemaName)
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out, nil
}

func removeString(ss []string, target string) []string {
	out := ss[:0]
	for _, s := range ss {
		if s != target {
			out = append(out, s)
		}
	}
	return out
}
