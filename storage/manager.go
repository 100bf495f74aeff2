package storage

import (
	"sync"

	"github.com/quilldb/quill/sqlerrors"
)

type tableKey struct {
	schema string
	table  string
}

// Manager maps (schema, table) to HeapTable. Table lifetimes mirror the
// catalog's: CreateTable/DropTable calls must be issued alongside the
// matching catalog mutation.
type Manager struct {
	mu     sync.Mutex
	tables map[tableKey]*HeapTable
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{tables: map[tableKey]*HeapTable{}}
}

// CreateTable registers a new, empty HeapTable for (schema, table).
func (m *Manager) CreateTable(schema, table string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[tableKey{schema, table}] = NewHeapTable()
}

// DropTable removes the HeapTable for (schema, table), if any.
func (m *Manager) DropTable(schema, table string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tables, tableKey{schema, table})
}

// DropSchema removes every HeapTable registered under schema.
func (m *Manager) DropSchema(schema string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.tables {
		if k.schema == schema {
			delete(m.tables, k)
		}
	}
}

// Get returns the HeapTable for (schema, table).
func (m *Manager) Get(schema, table string) (*HeapTable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tables[tableKey{schema, table}]
	if !ok {
		return nil, sqlerrors.ErrRuntime.New("no storage for table: " + schema + "." + table)
	}
	return t, nil
}
