// Package aggregation implements quill's aggregate function registry:
// count, sum, avg, min, max, each wrapped so a Null argument leaves the
// running state unchanged.
package aggregation

import (
	"strings"
	"sync"

	"github.com/quilldb/quill/types"
)

// State is opaque accumulator state threaded through Accumulate calls; each
// overload defines its own concrete shape behind the interface.
type State interface{}

// Overload is one concrete aggregate signature.
type Overload struct {
	Name         string
	ArgTypes     []types.Type
	RetType      types.Type
	DefaultState func() State
	Accumulate   func(args []types.Value, state State) State
	Finalize     func(state State) types.Value
}

// Registry maps a lowercase aggregate name to its overloads, in arrival
// order.
type Registry struct {
	mu        sync.RWMutex
	overloads map[string][]*Overload
}

func newRegistry() *Registry {
	return &Registry{overloads: map[string][]*Overload{}}
}

// Register appends an overload under name, wrapping accumulate with
// null-skip semantics: if any argument is Null, state is returned
// unchanged.
func (r *Registry) Register(name string, argTypes []types.Type, retType types.Type, defaultState func() State, accumulate func(args []types.Value, state State) State, finalize func(State) types.Value) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name = strings.ToLower(name)
	wrapped := func(args []types.Value, state State) State {
		for _, a := range args {
			if a.IsNull() {
				return state
			}
		}
		return accumulate(args, state)
	}
	r.overloads[name] = append(r.overloads[name], &Overload{
		Name:         name,
		ArgTypes:     argTypes,
		RetType:      retType,
		DefaultState: defaultState,
		Accumulate:   wrapped,
		Finalize:     finalize,
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

// Default returns the process-wide aggregate function registry,
// initializing the built-ins on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = newRegistry()
		registerBuiltins(defaultRegistry)
	})
	return defaultRegistry
}
