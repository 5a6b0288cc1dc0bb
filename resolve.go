package asn1pkix

/*
resolve.go contains the open type resolver.
*/

import "log/slog"

/*
Resolve returns a copy of tree v, decoded with schema s, in which every
open type node whose discriminating OID is known to l has been decoded
into a [Resolved] node. Resolution recurses into the values it decodes.

A node whose OID is unknown to l, or whose sibling field is absent, is
returned as an [Unresolved] node; this is not an error. A failure to
decode an open value aborts resolution entirely, and the returned
*[CodecError] carries the path, offset and OID of the offending node.

The input tree is never modified.
*/
func Resolve(v Value, s *Schema, l Lookuper, opts ...Option) (Value, error) {
	cfg := newCodecConfig(opts)
	cfg.lookup = l
	if s == nil {
		return nil, &CodecError{Op: "resolve", Offset: -1, Detail: "nil schema", Err: ErrSchema}
	}
	return newResolver(cfg).walk(v, s, nil, "", 1)
}

type resolver struct {
	cfg *codecConfig
	dec *decoder
}

func newResolver(cfg *codecConfig) *resolver {
	return &resolver{cfg: cfg, dec: &decoder{cfg: cfg, op: "resolve"}}
}

func (r *resolver) fail(kind error, path, detail string) *CodecError {
	return &CodecError{Op: "resolve", Path: path, Offset: -1, Detail: detail, Err: kind}
}

func (r *resolver) walk(v Value, s *Schema, scope *Sequence, path string, depth int) (Value, error) {
	if v == nil {
		return nil, nil
	} else if depth > r.cfg.maxDepth {
		return nil, &CodecError{Op: "resolve", Path: path, Offset: -1,
			Detail: "limit is " + itoa(r.cfg.maxDepth), Err: ErrMaxDepth}
	}

	switch s.kind {
	case KindSequence:
		seq, ok := v.(*Sequence)
		if !ok {
			return nil, r.fail(ErrSchema, path, "expected SEQUENCE, found "+v.Kind().String())
		} else if seq == nil {
			return nil, r.fail(ErrSchema, path, "nil SEQUENCE value for "+s.String())
		}
		out := &Sequence{fields: make([]FieldValue, len(seq.fields))}
		for i, fv := range seq.fields {
			fpath := joinPath(path, fv.Name)
			f, ok := s.Field(fv.Name)
			if !ok {
				return nil, r.fail(ErrSchema, fpath, "no such field in "+s.String())
			}
			nv, err := r.walk(fv.Value, f.Type, seq, fpath, depth+1)
			if err != nil {
				return nil, err
			}
			out.fields[i] = FieldValue{Name: fv.Name, Value: nv, Defaulted: fv.Defaulted}
		}
		return out, nil

	case KindSequenceOf, KindSetOf:
		col, ok := v.(*Collection)
		if !ok {
			return nil, r.fail(ErrSchema, path, "expected "+s.kind.String()+", found "+v.Kind().String())
		} else if col == nil {
			return nil, r.fail(ErrSchema, path, "nil "+s.kind.String()+" value for "+s.String())
		}
		out := &Collection{kind: col.kind, elems: make([]Value, len(col.elems))}
		for i, e := range col.elems {
			nv, err := r.walk(e, s.elem, scope, path+"["+itoa(i)+"]", depth+1)
			if err != nil {
				return nil, err
			}
			out.elems[i] = nv
		}
		return out, nil

	case KindChoice:
		ch, ok := v.(Chosen)
		if !ok {
			return nil, r.fail(ErrSchema, path, "expected CHOICE, found "+v.Kind().String())
		}
		alt, ok := s.Field(ch.Name)
		if !ok {
			return nil, r.fail(ErrSchema, path, "no such alternative in "+s.String()+": "+ch.Name)
		}
		nv, err := r.walk(ch.Value, alt.Type, scope, path, depth)
		if err != nil {
			return nil, err
		}
		return Chosen{Name: ch.Name, Value: nv}, nil

	case KindOpen:
		return r.open(v, s, scope, path, depth)
	}

	return v, nil
}

func (r *resolver) open(v Value, s *Schema, scope *Sequence, path string, depth int) (Value, error) {
	switch tv := v.(type) {
	case *Resolved:
		if tv.Schema == nil {
			return nil, r.fail(ErrSchema, path, "resolved node without a schema")
		}
		nv, err := r.walk(tv.Value, tv.Schema, nil, path, depth+1)
		if err != nil {
			return nil, err
		}
		return &Resolved{ID: tv.ID, Value: nv, Schema: tv.Schema}, nil
	case *Unresolved:
		return r.resolve(tv, s, scope, path, depth)
	}

	return nil, r.fail(ErrSchema, path, "expected an open type node, found "+v.Kind().String())
}

func (r *resolver) resolve(u *Unresolved, s *Schema, scope *Sequence, path string, depth int) (Value, error) {
	id := u.ID
	if sib := siblingOID(scope, s.open.sibling); !sib.IsZero() {
		id = sib
	}
	opaque := &Unresolved{ID: id, Bytes: u.Bytes, off: u.off}

	if id.IsZero() || r.cfg.lookup == nil {
		return opaque, nil
	}

	sub, found := r.cfg.lookup.Lookup(s.open.domain, id)
	if !found {
		debugEvent(r.cfg.logger, EventResolve, "left opaque",
			slog.String("path", path),
			slog.String("domain", string(s.open.domain)),
			slog.String("oid", id.String()))
		return opaque, nil
	}

	nv, err := r.dec.decodeAll(u.Bytes, sub, path, u.off, depth+1)
	if err == nil {
		nv, err = r.walk(nv, sub, nil, path, depth+1)
	}
	if err != nil {
		if cerr, ok := err.(*CodecError); ok && cerr.OID.IsZero() {
			cerr.OID = id
		}
		return nil, err
	}

	debugEvent(r.cfg.logger, EventResolve, "resolved",
		slog.String("path", path),
		slog.String("domain", string(s.open.domain)),
		slog.String("oid", id.String()),
		slog.String("schema", sub.String()))

	return &Resolved{ID: id, Value: nv, Schema: sub}, nil
}
