package asn1pkix

/*
decode.go contains the schema-directed DER decoder.
*/

import (
	"bytes"
	"log/slog"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

/*
Decode returns the [Value] tree held by the DER encoding b, shaped by
schema s. The input must hold exactly one element; trailing bytes are
an error.

Without [WithOpenTypes], every open type node is left [Unresolved]
(raw mode). With it, open types are resolved after decoding, exactly
as [Resolve] would, and any failure while decoding an open value
aborts the whole call.

All errors are of type *[CodecError].
*/
func Decode(b []byte, s *Schema, opts ...Option) (Value, error) {
	v, rest, err := DecodePrefix(b, s, opts...)
	if err == nil && len(rest) > 0 {
		err = &CodecError{
			Op:     "decode",
			Offset: len(b) - len(rest),
			Detail: "trailing data after top-level element",
			Err:    ErrMalformedEncoding,
		}
		v = nil
	}
	return v, err
}

/*
DecodePrefix is like [Decode], except that bytes which follow the first
element are returned instead of being treated as an error.
*/
func DecodePrefix(b []byte, s *Schema, opts ...Option) (v Value, rest []byte, err error) {
	cfg := newCodecConfig(opts)
	if s == nil {
		err = &CodecError{Op: "decode", Offset: -1, Detail: "nil schema", Err: ErrSchema}
		return
	}

	d := &decoder{cfg: cfg, op: "decode"}
	in := cryptobyte.String(b)
	off := 0

	var e element
	if e, err = d.next(&in, &off, ""); err == nil {
		if v, err = d.decodeElem(e, s, nil, "", 1); err == nil && cfg.lookup != nil {
			v, err = newResolver(cfg).walk(v, s, nil, "", 1)
		}
	}

	if err != nil {
		v = nil
		debugEvent(cfg.logger, EventDecode, "decode failed",
			slog.String("schema", s.String()),
			slog.Any("error", err))
		return
	}

	rest = []byte(in)
	debugEvent(cfg.logger, EventDecode, "decoded",
		slog.String("schema", s.String()),
		slog.Int("length", off),
		slog.Bool("resolved", cfg.lookup != nil))

	return
}

/*
element is one TLV read from the input, along with its position.
*/
type element struct {
	tag     asn1.Tag
	full    []byte
	body    []byte
	off     int
	bodyOff int
}

type decoder struct {
	cfg *codecConfig
	op  string
}

func (d *decoder) fail(kind error, path string, off int, detail string) *CodecError {
	return &CodecError{Op: d.op, Path: path, Offset: off, Detail: detail, Err: kind}
}

func (d *decoder) mismatch(path string, off int, want *Schema, found asn1.Tag) *CodecError {
	err := d.fail(ErrMalformedEncoding, path, off, "unexpected tag")
	err.Expected = expectedTag(want)
	err.Found = describeTag(found)
	return err
}

func expectedTag(s *Schema) string {
	if t, ok := s.outerTag(); ok {
		return describeTag(t)
	}
	return "one of " + s.String() + " alternatives"
}

/*
next reads one complete element from in, advancing off past it.
*/
func (d *decoder) next(in *cryptobyte.String, off *int, path string) (e element, err error) {
	if len(*in) > 0 && (*in)[0]&0x1f == 0x1f {
		err = d.fail(ErrMalformedEncoding, path, *off, "high-tag-number form is not supported")
		return
	}

	var full cryptobyte.String
	if !in.ReadAnyASN1Element(&full, &e.tag) {
		detail := "truncated element or non-DER length"
		if len(*in) == 0 {
			detail = "unexpected end of input"
		}
		err = d.fail(ErrMalformedEncoding, path, *off, detail)
		return
	}

	var body cryptobyte.String
	hdr := full
	hdr.ReadAnyASN1(&body, nil)
	e.full, e.body = []byte(full), []byte(body)
	e.off = *off
	e.bodyOff = *off + len(full) - len(body)
	*off += len(full)

	return
}

/*
decodeElem decodes element e as described by s. scope is the nearest
enclosing SEQUENCE, consulted by open types for their sibling OID.
*/
func (d *decoder) decodeElem(e element, s *Schema, scope *Sequence, path string, depth int) (v Value, err error) {
	if depth > d.cfg.maxDepth {
		return nil, &CodecError{Op: d.op, Path: path, Offset: e.off,
			Detail: "limit is " + itoa(d.cfg.maxDepth), Err: ErrMaxDepth}
	}

	if s.tag >= 0 && s.explicit {
		return d.decodeExplicit(e, s, scope, path, depth)
	}

	switch s.kind {
	case KindChoice:
		for _, alt := range s.fields {
			if alt.Type.matches(e.tag) {
				if v, err = d.decodeElem(e, alt.Type, scope, path, depth); err == nil {
					v = Chosen{Name: alt.Name, Value: v}
				}
				return
			}
		}
		return nil, d.mismatch(path, e.off, s, e.tag)
	case KindAny:
		if !s.matches(e.tag) {
			return nil, d.mismatch(path, e.off, s, e.tag)
		}
		return Raw(append([]byte(nil), e.full...)), nil
	case KindOpen:
		return d.decodeOpen(e, s, scope, path)
	}

	if t, _ := s.innerTag(); t != e.tag {
		return nil, d.mismatch(path, e.off, s, e.tag)
	}

	switch {
	case s.kind.isPrimitive():
		if v, err = decodePrimitive(s.kind, e.body); err != nil {
			return nil, d.fail(ErrMalformedEncoding, path, e.off, err.Error())
		}
	case s.kind == KindSequence:
		v, err = d.decodeSequence(e, s, path, depth+1)
	case s.kind == KindSequenceOf || s.kind == KindSetOf:
		v, err = d.decodeCollection(e, s, scope, path, depth+1)
	default:
		err = d.fail(ErrSchema, path, e.off, "cannot decode "+s.kind.String())
	}

	if err == nil {
		if cerr := s.constraints.Constrain(v); cerr != nil {
			v, err = nil, d.fail(ErrConstraintViolation, path, e.off, cerr.Error())
		}
	}

	return
}

func (d *decoder) decodeExplicit(e element, s *Schema, scope *Sequence, path string, depth int) (Value, error) {
	if t, _ := s.outerTag(); t != e.tag {
		return nil, d.mismatch(path, e.off, s, e.tag)
	}

	in := cryptobyte.String(e.body)
	off := e.bodyOff
	inner, err := d.next(&in, &off, path)
	if err != nil {
		return nil, err
	} else if !in.Empty() {
		return nil, d.fail(ErrMalformedEncoding, path, off, "EXPLICIT tag holds more than one element")
	}

	u := s.clone()
	u.tag, u.explicit = -1, false
	return d.decodeElem(inner, u, scope, path, depth+1)
}

func (d *decoder) decodeOpen(e element, s *Schema, scope *Sequence, path string) (Value, error) {
	u := &Unresolved{off: e.off}
	if s.open.carrier == CarrierOctetString {
		if e.tag != asn1.OCTET_STRING {
			return nil, d.mismatch(path, e.off, s, e.tag)
		}
		u.Bytes = append([]byte(nil), e.body...)
		u.off = e.bodyOff
	} else {
		u.Bytes = append([]byte(nil), e.full...)
	}

	u.ID = siblingOID(scope, s.open.sibling)
	return u, nil
}

/*
siblingOID returns the OBJECT IDENTIFIER held by the component of scope
bearing name n, or a zero instance.
*/
func siblingOID(scope *Sequence, n string) (id ObjectIdentifier) {
	if v, ok := scope.Get(n); ok {
		id, _ = v.(ObjectIdentifier)
	}
	return
}

func (d *decoder) decodeSequence(e element, s *Schema, path string, depth int) (Value, error) {
	in := cryptobyte.String(e.body)
	off := e.bodyOff
	seq := &Sequence{fields: make([]FieldValue, 0, len(s.fields))}

	for _, f := range s.fields {
		fpath := joinPath(path, f.Name)

		if in.Empty() || !f.Type.matches(asn1.Tag(in[0])) {
			if !f.absentAllowed() {
				err := d.fail(ErrMalformedEncoding, fpath, off, "missing required field")
				err.Expected = expectedTag(f.Type)
				if !in.Empty() {
					err.Found = describeTag(asn1.Tag(in[0]))
				} else {
					err.Found = "end of " + s.String()
				}
				return nil, err
			}
			seq.fields = append(seq.fields, FieldValue{
				Name:      f.Name,
				Value:     f.Default,
				Defaulted: f.Default != nil,
			})
			continue
		}

		fe, err := d.next(&in, &off, fpath)
		if err != nil {
			return nil, err
		}

		v, err := d.decodeElem(fe, f.Type, seq, fpath, depth)
		if err != nil {
			return nil, err
		} else if f.isDefault(fe.full) {
			return nil, d.fail(ErrMalformedEncoding, fpath, fe.off,
				"DEFAULT value must not be encoded")
		}
		seq.fields = append(seq.fields, FieldValue{Name: f.Name, Value: v})
	}

	if !in.Empty() {
		err := d.fail(ErrMalformedEncoding, path, off, "unexpected element after last field of "+s.String())
		err.Found = describeTag(asn1.Tag(in[0]))
		return nil, err
	}

	return seq, nil
}

func (d *decoder) decodeCollection(e element, s *Schema, scope *Sequence, path string, depth int) (Value, error) {
	in := cryptobyte.String(e.body)
	off := e.bodyOff
	col := &Collection{kind: s.kind}

	var prev []byte
	for i := 0; !in.Empty(); i++ {
		epath := path + "[" + itoa(i) + "]"
		ee, err := d.next(&in, &off, epath)
		if err != nil {
			return nil, err
		}

		if s.kind == KindSetOf && prev != nil && bytes.Compare(prev, ee.full) > 0 {
			return nil, d.fail(ErrMalformedEncoding, epath, ee.off, "SET OF elements are not in DER order")
		}
		prev = ee.full

		v, err := d.decodeElem(ee, s.elem, scope, epath, depth)
		if err != nil {
			return nil, err
		}
		col.elems = append(col.elems, v)
	}

	return col, nil
}

/*
decodeAll decodes b, which must hold exactly one element, as an open
value. base is the offset of b within the top-level input.
*/
func (d *decoder) decodeAll(b []byte, s *Schema, path string, base, depth int) (Value, error) {
	in := cryptobyte.String(b)
	off := base

	e, err := d.next(&in, &off, path)
	if err != nil {
		return nil, err
	}

	v, err := d.decodeElem(e, s, nil, path, depth)
	if err == nil && !in.Empty() {
		v, err = nil, d.fail(ErrMalformedEncoding, path, off, "trailing data within open value")
	}
	return v, err
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
