// Package storage implements quill's in-memory row store: an
// insertion-ordered HeapTable per (schema, table), addressed through a
// StorageManager, and scanned through an externally-owned ScanState cursor
// so multiple independent scans can coexist on the same table.
package storage

import (
	"sync"

	"github.com/quilldb/quill/types"
)

// HeapTable is an ordered, append-only sequence of Rows.
type HeapTable struct {
	mu   sync.RWMutex
	rows []types.Row
}

// NewHeapTable returns an empty HeapTable.
func NewHeapTable() *HeapTable {
	return &HeapTable{}
}

// Insert appends row to the table in insertion order.
func (h *HeapTable) Insert(row types.Row) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rows = append(h.rows, row.Clone())
}

// Len returns the number of rows currently stored.
func (h *HeapTable) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rows)
}

// ScanState is a monotonically increasing cursor the caller owns and passes
// to successive Scan calls.
type ScanState struct {
	index int
}

// NewScanState returns a cursor positioned before the first row.
func NewScanState() *ScanState {
	return &ScanState{}
}

// Scan returns the next row under state and advances it, or ok=false at
// end of stream.
func (h *HeapTable) Scan(state *ScanState) (row types.Row, ok bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if state.index >= len(h.rows) {
		return nil, false
	}
	row = h.rows[state.index]
	state.index++
	return row, true
}
