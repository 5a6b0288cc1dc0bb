package asn1pkix

/*
encode.go contains the schema-directed DER encoder.
*/

import (
	"bytes"
	"log/slog"
	"sort"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

/*
Encode returns the DER encoding of v, shaped by schema s. The schema
supplies the tagging and DEFAULT values which v does not carry itself.

Components equal to their DEFAULT are omitted, SET OF elements are
sorted, [Resolved] nodes are encoded from their typed value (and
wrapped in an OCTET STRING where the carrier calls for one) and
[Unresolved] nodes are emitted verbatim. Constraints are checked
before anything is written.

All errors are of type *[CodecError].
*/
func Encode(v Value, s *Schema, opts ...Option) ([]byte, error) {
	cfg := newCodecConfig(opts)
	if s == nil {
		return nil, &CodecError{Op: "encode", Offset: -1, Detail: "nil schema", Err: ErrSchema}
	}

	enc := &encoder{cfg: cfg}
	b := cryptobyte.NewBuilder(nil)
	if err := enc.encode(b, v, s, "", 1); err != nil {
		debugEvent(cfg.logger, EventEncode, "encode failed",
			slog.String("schema", s.String()),
			slog.Any("error", err))
		return nil, err
	}

	out, err := b.Bytes()
	if err != nil {
		return nil, enc.fail(ErrSchema, "", err.Error())
	}

	debugEvent(cfg.logger, EventEncode, "encoded",
		slog.String("schema", s.String()),
		slog.Int("length", len(out)))

	return out, nil
}

type encoder struct {
	cfg *codecConfig
}

func (e *encoder) fail(kind error, path, detail string) *CodecError {
	return &CodecError{Op: "encode", Path: path, Offset: -1, Detail: detail, Err: kind}
}

/*
nested runs f against a child builder and returns the bytes it wrote.
*/
func nested(f func(*cryptobyte.Builder) error) ([]byte, error) {
	c := cryptobyte.NewBuilder(nil)
	if err := f(c); err != nil {
		return nil, err
	}
	return c.Bytes()
}

func (e *encoder) encode(b *cryptobyte.Builder, v Value, s *Schema, path string, depth int) error {
	if v == nil {
		return e.fail(ErrSchema, path, "absent value for "+s.String())
	} else if depth > e.cfg.maxDepth {
		return &CodecError{Op: "encode", Path: path, Offset: -1,
			Detail: "limit is " + itoa(e.cfg.maxDepth), Err: ErrMaxDepth}
	}

	if s.tag >= 0 && s.explicit {
		u := s.clone()
		u.tag, u.explicit = -1, false
		inner, err := nested(func(c *cryptobyte.Builder) error {
			return e.encode(c, v, u, path, depth+1)
		})
		if err != nil {
			return err
		}
		t, _ := s.outerTag()
		b.AddASN1(t, func(c *cryptobyte.Builder) { c.AddBytes(inner) })
		return nil
	}

	switch s.kind {
	case KindChoice:
		ch, ok := v.(Chosen)
		if !ok {
			return e.fail(ErrSchema, path, "expected CHOICE, found "+v.Kind().String())
		}
		alt, ok := s.Field(ch.Name)
		if !ok {
			return e.fail(ErrSchema, path, "no such alternative in "+s.String()+": "+ch.Name)
		}
		return e.encode(b, ch.Value, alt.Type, path, depth)
	case KindAny:
		raw, ok := v.(Raw)
		if !ok {
			return e.fail(ErrSchema, path, "expected ANY, found "+v.Kind().String())
		} else if !isSingleElement(raw) {
			return e.fail(ErrSchema, path, "ANY value is not exactly one DER element")
		} else if !s.matches(asn1.Tag(raw[0])) {
			return e.fail(ErrSchema, path, "ANY value bears "+describeTag(asn1.Tag(raw[0]))+
				", expected "+expectedTag(s))
		}
		b.AddBytes(raw)
		return nil
	case KindOpen:
		return e.encodeOpen(b, v, s, path, depth)
	}

	if err := s.constraints.Constrain(v); err != nil {
		return e.fail(ErrConstraintViolation, path, err.Error())
	}

	t, _ := s.innerTag()
	var content []byte
	var err error

	switch {
	case s.kind.isPrimitive():
		if content, err = encodePrimitive(s.kind, v); err != nil {
			return e.fail(ErrSchema, path, err.Error())
		}
	case s.kind == KindSequence:
		content, err = nested(func(c *cryptobyte.Builder) error {
			return e.encodeSequence(c, v, s, path, depth+1)
		})
	case s.kind == KindSequenceOf || s.kind == KindSetOf:
		content, err = e.encodeCollection(v, s, path, depth+1)
	default:
		err = e.fail(ErrSchema, path, "cannot encode "+s.kind.String())
	}

	if err == nil {
		b.AddASN1(t, func(c *cryptobyte.Builder) { c.AddBytes(content) })
	}
	return err
}

func (e *encoder) encodeSequence(b *cryptobyte.Builder, v Value, s *Schema, path string, depth int) error {
	seq, ok := v.(*Sequence)
	if !ok {
		return e.fail(ErrSchema, path, "expected SEQUENCE, found "+v.Kind().String())
	} else if seq == nil {
		return e.fail(ErrSchema, path, "nil SEQUENCE value for "+s.String())
	}

	for _, fv := range seq.fields {
		if _, ok := s.Field(fv.Name); !ok {
			return e.fail(ErrSchema, joinPath(path, fv.Name), "no such field in "+s.String())
		}
	}

	for _, f := range s.fields {
		fpath := joinPath(path, f.Name)
		fv, present := seq.Get(f.Name)
		switch {
		case !present && !f.absentAllowed():
			return e.fail(ErrSchema, fpath, "missing required field")
		case !present:
			continue
		}

		der, err := nested(func(c *cryptobyte.Builder) error {
			return e.encode(c, fv, f.Type, fpath, depth)
		})
		if err != nil {
			return err
		} else if !f.isDefault(der) {
			b.AddBytes(der)
		}
	}

	return nil
}

func (e *encoder) encodeCollection(v Value, s *Schema, path string, depth int) ([]byte, error) {
	col, ok := v.(*Collection)
	if !ok {
		return nil, e.fail(ErrSchema, path, "expected "+s.kind.String()+", found "+v.Kind().String())
	} else if col == nil {
		return nil, e.fail(ErrSchema, path, "nil "+s.kind.String()+" value for "+s.String())
	}

	elems := make([][]byte, len(col.elems))
	for i, ev := range col.elems {
		var err error
		elems[i], err = nested(func(c *cryptobyte.Builder) error {
			return e.encode(c, ev, s.elem, path+"["+itoa(i)+"]", depth)
		})
		if err != nil {
			return nil, err
		}
	}

	if s.kind == KindSetOf {
		sort.SliceStable(elems, func(i, j int) bool { return bytes.Compare(elems[i], elems[j]) < 0 })
	}

	return bytes.Join(elems, nil), nil
}

func (e *encoder) encodeOpen(b *cryptobyte.Builder, v Value, s *Schema, path string, depth int) error {
	var inner []byte
	switch tv := v.(type) {
	case *Unresolved:
		inner = tv.Bytes
		if s.open.carrier == CarrierElement && !isSingleElement(inner) {
			return e.fail(ErrSchema, path, "open value is not exactly one DER element")
		}
	case *Resolved:
		if tv.Schema == nil {
			return e.fail(ErrSchema, path, "resolved node without a schema")
		}
		var err error
		if inner, err = nested(func(c *cryptobyte.Builder) error {
			return e.encode(c, tv.Value, tv.Schema, path, depth+1)
		}); err != nil {
			if cerr, ok := err.(*CodecError); ok && cerr.OID.IsZero() {
				cerr.OID = tv.ID
			}
			return err
		}
	default:
		return e.fail(ErrSchema, path, "expected an open type node, found "+v.Kind().String())
	}

	if s.open.carrier == CarrierOctetString {
		b.AddASN1(asn1.OCTET_STRING, func(c *cryptobyte.Builder) { c.AddBytes(inner) })
	} else {
		b.AddBytes(inner)
	}
	return nil
}

func isSingleElement(b []byte) bool {
	var elem cryptobyte.String
	var tag asn1.Tag
	in := cryptobyte.String(b)
	return in.ReadAnyASN1Element(&elem, &tag) && in.Empty()
}
