// Package registry implements the named-curve registry (component E): a
// process-wide, name/alias → lazily-constructed Curve mapping, plus a CBOR
// parameter codec (component N) for interchange.
//
// Grounded on original_source/ecc/CurveDB.py: the two-tier lazy/cached map
// and the "fail if name already taken" registration rule are carried over;
// the historical `register()` calling into an undefined `lazycurve` name
// (spec.md §9's flagged source bug) is implemented correctly here, using
// the received curve/constructor rather than reproducing the crash.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/johndoe31415/ecctoolkit/curve"
	"github.com/johndoe31415/ecctoolkit/eccerr"
	"github.com/johndoe31415/ecctoolkit/internal/elog"
)

// EdDSAHash names the hash function a twisted Edwards curve uses for
// EdDSA, per spec.md §4.7. Most registered curves never do EdDSA and leave
// this at its zero value.
type EdDSAHash int

const (
	HashNone EdDSAHash = iota
	HashSHA512
	HashSHAKE256
)

type lazyEntry struct {
	construct func() (*curve.Curve, error)
	hash      EdDSAHash
	cached    *curve.Curve
	err       error
	once      sync.Once
}

// Registry is a read-mostly, concurrent-safe name → Curve map. The zero
// value is not usable; construct with New.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*lazyEntry
	names   map[string]bool // canonical (primary) names only, for CurveNames
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]*lazyEntry),
		names:   make(map[string]bool),
	}
}

// RegisterLazy registers a curve under name and its aliases (name and
// strings.ToLower(name) are always included, matching CurveDB.get_aliases).
// The curve is not constructed until first looked up. Registration fails
// if any name or alias is already taken.
func (r *Registry) RegisterLazy(name string, aliases []string, hash EdDSAHash, construct func() (*curve.Curve, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := aliasSet(name, aliases)
	for n := range all {
		if _, taken := r.entries[n]; taken {
			return fmt.Errorf("%w: %s", eccerr.ErrNameAlreadyRegistered, n)
		}
	}

	e := &lazyEntry{construct: construct, hash: hash}
	for n := range all {
		r.entries[n] = e
	}
	r.names[name] = true
	elog.L().Debug().Str("curve", name).Msg("curve registered (lazy)")
	return nil
}

func aliasSet(name string, extra []string) map[string]bool {
	set := map[string]bool{name: true, lower(name): true}
	for _, a := range extra {
		set[a] = true
	}
	return set
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Get materialises (on first call) and returns the curve registered under
// name. Concurrent first materialisation is idempotent: double-checked
// locking via sync.Once guarantees at-most-once construction per entry.
func (r *Registry) Get(name string) (*curve.Curve, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", eccerr.ErrNameNotFound, name)
	}
	e.once.Do(func() {
		e.cached, e.err = e.construct()
		if e.err == nil {
			if e.hash == HashSHAKE256 {
				e.cached.SetEdDSAHash(curve.EdDSAHashSHAKE256)
			}
			elog.L().Debug().Str("curve", name).Msg("curve materialised")
		}
	})
	return e.cached, e.err
}

// EdDSAHashFor returns the EdDSA hash function configured for name, or
// HashNone if the curve was not registered with one.
func (r *Registry) EdDSAHashFor(name string) (EdDSAHash, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return HashNone, fmt.Errorf("%w: %s", eccerr.ErrNameNotFound, name)
	}
	return e.hash, nil
}

// Names returns the canonical (primary) names of every registered curve,
// sorted for determinism.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.names))
	for n := range r.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Default is the process-wide registry, populated at package
// initialisation with the standardised catalog (registry.go's init in
// catalog.go). The design notes call for initialisation once at startup by
// static registrations, with safe concurrent readers thereafter.
var Default = New()

// GetCurveByName looks up a curve by name in the default registry.
func GetCurveByName(name string) (*curve.Curve, error) {
	return Default.Get(name)
}

// CurveNames returns every curve name known to the default registry.
func CurveNames() []string {
	return Default.Names()
}
