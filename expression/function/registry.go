// Package function implements quill's scalar function registry: an
// ordered, arrival-order list of overloads per lowercase function name,
// each wrapped so that a Null argument short-circuits to Null without
// invoking the underlying body.
package function

import (
	"strings"
	"sync"

	"github.com/quilldb/quill/types"
)

// Behavior is a scalar function's pure body: arguments in, one Datum out.
type Behavior func(args []types.Value) types.Value

// Overload is one concrete parameter signature of a named scalar function.
type Overload struct {
	Name     string
	ArgTypes []types.Type
	RetType  types.Type
	Behavior Behavior
}

// Registry maps a lowercase function name to its overloads, in the order
// they were registered.
type Registry struct {
	mu        sync.RWMutex
	overloads map[string][]*Overload
}

// newRegistry builds an empty registry.
func newRegistry() *Registry {
	return &Registry{overloads: map[string][]*Overload{}}
}

// Register appends an overload under name, wrapping behavior with
// null-passthrough semantics: if any argument is Null, the overload
// returns Null without invoking body.
func (r *Registry) Register(name string, argTypes []types.Type, retType types.Type, body Behavior) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name = strings.ToLower(name)
	wrapped := func(args []types.Value) types.Value {
		for _, a := range args {
			if a.IsNull() {
				return types.NewNull()
			}
		}
		return body(args)
	}
	r.overloads[name] = append(r.overloads[name], &Overload{
		Name:     name,
		ArgTypes: argTypes,
		RetType:  retType,
		Behavior: wrapped,
	})
}

// Candidates returns the overload list for name in arrival order, or nil if
// the function is unknown.
func (r *Registry) Candidates(name string) []*Overload {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.overloads[strings.ToLower(name)]
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide scalar function registry, initializing
// the built-ins on first use (idempotent thereafter, safe for shared read
// access).
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = newRegistry()
		registerBuiltins(defaultRegistry)
	})
	return defaultRegistry
}
