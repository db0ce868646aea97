// Package format provides named byte-rendering formats.
//
// This package keeps a set of output formats in a thread-safe map
// using the Registry type. The process-wide Formats registry comes
// pre-loaded with the builtin formats, and applications may register
// their own under new names.
package format

import (
	"sort"

	"github.com/puzpuzpuz/xsync/v3"
)

// Func appends the rendering of src to dst.
//
// A Func must be total: every byte value 0-255 renders to something,
// and the call cannot fail.
type Func func(dst, src []byte) []byte

// Registry maps format names to their Func.
//
// Registry is thread-safe for writes, but only after Init() or first
// modification. The zero value is valid and empty.
type Registry struct {
	db *xsync.MapOf[string, Func]
}

// Init initializes the Registry and makes it fully thread-safe after return.
// Can be called multiple times for lazy init.
func (r *Registry) Init() {
	if r.db == nil {
		r.db = xsync.NewMapOf[string, Func]()
	}
}

// Valid returns true iff the Registry has already been initialized
func (r *Registry) Valid() bool {
	return r.db != nil
}

// Len returns the number of registered formats
func (r *Registry) Len() int {
	if r.Valid() {
		return r.db.Size()
	} else {
		return 0
	}
}

// Register overwrites registry[name] with f.
func (r *Registry) Register(name string, f Func) {
	r.Init()
	r.db.Store(name, f)
}

// Get returns registry[name] or nil if not registered.
func (r *Registry) Get(name string) (f Func) {
	if r.Valid() {
		f, _ = r.db.Load(name)
	}
	return
}

// Has returns true iff registry[name] is set and non-nil
func (r *Registry) Has(name string) bool {
	return r.Get(name) != nil
}

// Drop drops registry[name].
func (r *Registry) Drop(name string) {
	if r.Valid() {
		r.db.Delete(name)
	}
}

// Names returns the registered format names in ascending order.
func (r *Registry) Names() (names []string) {
	if !r.Valid() {
		return nil
	}

	r.db.Range(func(name string, f Func) bool {
		if f != nil {
			names = append(names, name)
		}
		return true
	})
	sort.Strings(names)
	return names
}

// Each executes cb for each non-nil format in the registry,
// in an ascending order of names.
func (r *Registry) Each(cb func(i int, name string, f Func)) {
	for i, name := range r.Names() {
		cb(i, name, r.Get(name))
	}
}

// Render appends the rendering of src by format name to dst.
// Returns ErrFormat if name is not registered.
func (r *Registry) Render(name string, dst, src []byte) ([]byte, error) {
	f := r.Get(name)
	if f == nil {
		return dst, ErrFormat
	}
	return f(dst, src), nil
}

// Formats is the process-wide format registry,
// pre-loaded with the builtin formats.
var Formats Registry

func init() {
	Formats.Register("ascii", Ascii)
	Formats.Register("quoted", Quoted)
	Formats.Register("hex", Hex)
	Formats.Register("json", JSON)
}
