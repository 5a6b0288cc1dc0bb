package asn1pkix

/*
registry.go contains the OID registry, in which schema modules record
the schema bound to each OID of a domain, and the frozen Catalog
snapshot consulted during open type resolution.
*/

import (
	"log/slog"
	"sort"
	"sync"
)

/*
Lookuper is qualified through any type which can map an OID within a
[Domain] to a [Schema]. Both [Registry] and [Catalog] qualify.
*/
type Lookuper interface {
	Lookup(Domain, ObjectIdentifier) (*Schema, bool)
}

/*
LookupFunc adapts an ordinary function to the [Lookuper] interface.
*/
type LookupFunc func(Domain, ObjectIdentifier) (*Schema, bool)

/*
Lookup calls the receiver with d and id.
*/
func (r LookupFunc) Lookup(d Domain, id ObjectIdentifier) (*Schema, bool) { return r(d, id) }

/*
Restrict returns a [Lookuper] which consults l only for the input
domains, and finds nothing within any other.
*/
func Restrict(l Lookuper, ds ...Domain) Lookuper {
	return LookupFunc(func(d Domain, id ObjectIdentifier) (*Schema, bool) {
		for _, x := range ds {
			if x == d {
				return l.Lookup(d, id)
			}
		}
		return nil, false
	})
}

/*
Entry binds one OID to one [Schema].
*/
type Entry struct {
	OID    ObjectIdentifier
	Schema *Schema
}

/*
Mapping is an ordered collection of [Entry] instances. When one OID
appears more than once, the last occurrence wins.
*/
type Mapping []Entry

type registration struct {
	schema *Schema
	owner  string
}

type table map[Domain]map[ObjectIdentifier]registration

func (r table) put(d Domain, id ObjectIdentifier, reg registration) (prev registration, found bool) {
	m, ok := r[d]
	if !ok {
		m = make(map[ObjectIdentifier]registration)
		r[d] = m
	}
	prev, found = m[id]
	m[id] = reg
	return
}

func (r table) get(d Domain, id ObjectIdentifier) (reg registration, found bool) {
	if m, ok := r[d]; ok {
		reg, found = m[id]
	}
	return
}

/*
Registry is the mutable, initialization-time store of OID to [Schema]
bindings, partitioned by [Domain]. A Registry is safe for concurrent
use, though it is normally populated from a single goroutine by
[Compose] and then discarded in favor of the [Catalog] returned by
[Registry.Freeze].

The zero value is ready for use.
*/
type Registry struct {
	mu      sync.RWMutex
	entries table
	logger  *slog.Logger
}

/*
NewRegistry returns a new, empty *[Registry] instance.
*/
func NewRegistry() *Registry {
	return &Registry{entries: make(table)}
}

/*
Register binds id to s within domain d. An existing binding for id is
replaced (last writer wins). Register never fails; a zero OID or a nil
schema is ignored.
*/
func (r *Registry) Register(d Domain, id ObjectIdentifier, s *Schema) {
	r.register(d, id, s, "")
}

func (r *Registry) register(d Domain, id ObjectIdentifier, s *Schema, owner string) (prev registration, found bool) {
	if id.IsZero() || s == nil {
		debugEvent(r.logger, EventRegistry, "ignoring empty registration",
			slog.String("domain", string(d)))
		return
	}

	r.mu.Lock()
	if r.entries == nil {
		r.entries = make(table)
	}
	prev, found = r.entries.put(d, id, registration{schema: s, owner: owner})
	r.mu.Unlock()

	debugEvent(r.logger, EventRegistry, "registered",
		slog.String("domain", string(d)),
		slog.String("oid", id.String()),
		slog.String("schema", s.String()),
		slog.Bool("replaced", found))

	return
}

/*
declare records domain d as known to the receiver instance, even while
it holds no entries.
*/
func (r *Registry) declare(d Domain) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(table)
	}
	if _, ok := r.entries[d]; !ok {
		r.entries[d] = make(map[ObjectIdentifier]registration)
	}
}

/*
Merge registers every [Entry] of m within domain d, in slice order.
*/
func (r *Registry) Merge(d Domain, m Mapping) {
	for _, e := range m {
		r.Register(d, e.OID, e.Schema)
	}
}

/*
Lookup returns the [Schema] bound to id within domain d. The Boolean is
false when no binding exists. Lookup never fails.
*/
func (r *Registry) Lookup(d Domain, id ObjectIdentifier) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.entries.get(d, id)
	return reg.schema, ok
}

/*
Freeze returns an immutable [Catalog] holding a copy of the current
bindings. Subsequent changes to the receiver do not affect the
returned Catalog.
*/
func (r *Registry) Freeze() *Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := &Catalog{entries: make(table, len(r.entries))}
	var n int
	for d, m := range r.entries {
		cm := make(map[ObjectIdentifier]registration, len(m))
		for id, reg := range m {
			cm[id] = reg
		}
		c.entries[d] = cm
		n += len(m)
	}

	debugEvent(r.logger, EventRegistry, "frozen",
		slog.Int("domains", len(c.entries)),
		slog.Int("entries", n))

	return c
}

/*
Catalog is a frozen snapshot of a [Registry]. It is read without locks
and is safe for concurrent use by any number of goroutines. A nil
*Catalog is an empty catalog.
*/
type Catalog struct {
	entries table
}

/*
Lookup returns the [Schema] bound to id within domain d. The Boolean is
false when no binding exists.
*/
func (r *Catalog) Lookup(d Domain, id ObjectIdentifier) (*Schema, bool) {
	if r == nil {
		return nil, false
	}
	reg, ok := r.entries.get(d, id)
	return reg.schema, ok
}

/*
Owner returns the name of the module which contributed the binding of
id within domain d. The name is empty for bindings made directly
through [Registry.Register].
*/
func (r *Catalog) Owner(d Domain, id ObjectIdentifier) (string, bool) {
	if r == nil {
		return "", false
	}
	reg, ok := r.entries.get(d, id)
	return reg.owner, ok
}

/*
Domains returns the domains known to the receiver instance, sorted by
name.
*/
func (r *Catalog) Domains() (ds []Domain) {
	if r == nil {
		return
	}
	for d := range r.entries {
		ds = append(ds, d)
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i] < ds[j] })
	return
}

/*
Len returns the number of bindings within domain d.
*/
func (r *Catalog) Len(d Domain) int {
	if r == nil {
		return 0
	}
	return len(r.entries[d])
}

/*
Entries returns the bindings within domain d, sorted by OID.
*/
func (r *Catalog) Entries(d Domain) (m Mapping) {
	if r == nil {
		return
	}
	for id, reg := range r.entries[d] {
		m = append(m, Entry{OID: id, Schema: reg.schema})
	}
	sort.Slice(m, func(i, j int) bool { return m[i].OID.Cmp(m[j].OID) < 0 })
	return
}
