package asn1pkix

/*
value.go contains the Value types which make up a decoded tree.
*/

import (
	"bytes"
	"math/big"
	"time"
	"unicode/utf8"
)

/*
Value is a node of a decoded tree. The concrete type mirrors the [Kind]
of the [Schema] the node was decoded with:

  - [Boolean], [Integer], [Enumerated], [BitString], [OctetString], [Null],
    [ObjectIdentifier], [String], [Time] for primitives
  - [Raw] for ANY
  - *[Sequence] for SEQUENCE
  - *[Collection] for SEQUENCE OF and SET OF
  - [Chosen] for CHOICE
  - *[Unresolved] or *[Resolved] for open types

The set of implementations is closed.
*/
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

/*
Boolean implements the ASN.1 BOOLEAN type.
*/
type Boolean bool

func (r Boolean) Kind() Kind { return KindBoolean }
func (Boolean) isValue()     {}
func (r Boolean) String() string {
	if r {
		return "TRUE"
	}
	return "FALSE"
}

/*
Integer implements the unbounded ASN.1 INTEGER type.
*/
type Integer struct{ n *big.Int }

/*
NewInteger returns an [Integer] holding x, which may be an int, int64,
uint64 or *[math/big.Int]. Unsupported input yields zero.
*/
func NewInteger(x any) Integer {
	n := new(big.Int)
	switch tv := x.(type) {
	case int:
		n.SetInt64(int64(tv))
	case int64:
		n.SetInt64(tv)
	case uint64:
		n.SetUint64(tv)
	case *big.Int:
		if tv != nil {
			n.Set(tv)
		}
	}
	return Integer{n}
}

/*
Big returns a copy of the receiver's value.
*/
func (r Integer) Big() *big.Int {
	if r.n == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(r.n)
}

/*
Int64 returns the receiver's value and whether it fits in an int64.
*/
func (r Integer) Int64() (int64, bool) {
	n := r.Big()
	return n.Int64(), n.IsInt64()
}

func (r Integer) Kind() Kind     { return KindInteger }
func (r Integer) String() string { return r.Big().String() }
func (Integer) isValue()         {}

/*
Enumerated implements the ASN.1 ENUMERATED type.
*/
type Enumerated int64

func (r Enumerated) Kind() Kind     { return KindEnumerated }
func (r Enumerated) String() string { return big.NewInt(int64(r)).String() }
func (Enumerated) isValue()         {}

/*
BitString implements the ASN.1 BIT STRING type.
*/
type BitString struct {
	Bytes     []byte
	BitLength int
}

/*
At returns the bit at index i (0 or 1), or 0 if i is out of range.
*/
func (r BitString) At(i int) int {
	if i < 0 || i >= r.BitLength {
		return 0
	}
	return int(r.Bytes[i/8]>>(7-uint(i%8))) & 1
}

/*
Len returns the number of bits held by the receiver instance.
*/
func (r BitString) Len() int       { return r.BitLength }
func (r BitString) Kind() Kind     { return KindBitString }
func (r BitString) String() string { return hexstr(r.Bytes) + "/" + itoa(r.BitLength) }
func (BitString) isValue()         {}

/*
OctetString implements the ASN.1 OCTET STRING type.
*/
type OctetString []byte

func (r OctetString) Len() int       { return len(r) }
func (r OctetString) Kind() Kind     { return KindOctetString }
func (r OctetString) String() string { return hexstr(r) }
func (OctetString) isValue()         {}

/*
Null implements the ASN.1 NULL type.
*/
type Null struct{}

func (Null) Kind() Kind     { return KindNull }
func (Null) String() string { return "NULL" }
func (Null) isValue()       {}

/*
String implements the restricted character string types. The text of
a TeletexString is kept octet for octet.
*/
type String struct {
	kind Kind
	text string
}

/*
NewString returns a [String] of kind k alongside an error following a
check of text against the character set of k.
*/
func NewString(k Kind, text string) (r String, err error) {
	if !k.IsString() {
		err = schemaErrorf("not a string kind: ", k)
	} else if err = checkCharset(k, text); err == nil {
		r = String{kind: k, text: text}
	}
	return
}

/*
Text returns the character content of the receiver instance.
*/
func (r String) Text() string { return r.text }

/*
Len returns the number of characters held by the receiver instance.
*/
func (r String) Len() int {
	if r.kind == KindTeletexString {
		return len(r.text)
	}
	return utf8.RuneCountInString(r.text)
}

func (r String) Kind() Kind     { return r.kind }
func (r String) String() string { return r.text }
func (String) isValue()         {}

/*
Time implements the UTCTime and GeneralizedTime types.
*/
type Time struct {
	kind Kind
	t    time.Time
}

/*
NewUTCTime returns a UTCTime [Time] holding t, truncated to seconds.
*/
func NewUTCTime(t time.Time) Time { return Time{KindUTCTime, t.UTC().Truncate(time.Second)} }

/*
NewGeneralizedTime returns a GeneralizedTime [Time] holding t,
truncated to seconds.
*/
func NewGeneralizedTime(t time.Time) Time {
	return Time{KindGeneralizedTime, t.UTC().Truncate(time.Second)}
}

/*
Time returns the instant held by the receiver instance.
*/
func (r Time) Time() time.Time { return r.t }
func (r Time) Kind() Kind      { return r.kind }
func (r Time) String() string  { return r.t.Format(time.RFC3339) }
func (Time) isValue()          {}

/*
Raw holds one complete, undecoded element (tag, length and content),
as produced for ANY.
*/
type Raw []byte

func (r Raw) Kind() Kind     { return KindAny }
func (r Raw) String() string { return hexstr(r) }
func (Raw) isValue()         {}

/*
FieldValue is one component of a [Sequence]. Value is nil when an
OPTIONAL field is absent. Defaulted is true when a DEFAULT field was
absent from the encoding and Value holds the implied default.
*/
type FieldValue struct {
	Name      string
	Value     Value
	Defaulted bool
}

/*
Sequence holds the components of a SEQUENCE in schema order.
*/
type Sequence struct {
	fields []FieldValue
}

/*
NewSequence returns a *[Sequence] holding the input components. Fields
are matched to a [Schema] by name when encoding, so components which
are absent may simply be left out.
*/
func NewSequence(fields ...FieldValue) *Sequence {
	return &Sequence{fields: append([]FieldValue(nil), fields...)}
}

/*
Get returns the value of the component bearing name n. The Boolean is
false when the component is unknown or absent.
*/
func (r *Sequence) Get(n string) (Value, bool) {
	if r == nil {
		return nil, false
	}
	for _, f := range r.fields {
		if f.Name == n {
			return f.Value, f.Value != nil
		}
	}
	return nil, false
}

/*
Fields returns the components of the receiver instance.
*/
func (r *Sequence) Fields() []FieldValue {
	if r == nil {
		return nil
	}
	return append([]FieldValue(nil), r.fields...)
}

/*
Set replaces the value of the component bearing name n, appending the
component if it is unknown to the receiver instance.
*/
func (r *Sequence) Set(n string, v Value) {
	for i := range r.fields {
		if r.fields[i].Name == n {
			r.fields[i] = FieldValue{Name: n, Value: v}
			return
		}
	}
	r.fields = append(r.fields, FieldValue{Name: n, Value: v})
}

func (r *Sequence) Kind() Kind { return KindSequence }
func (*Sequence) isValue()     {}
func (r *Sequence) String() string {
	b := newStrBuilder()
	b.WriteString("{")
	var n int
	for _, f := range r.Fields() {
		if f.Value == nil {
			continue
		}
		if n > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name + ": " + f.Value.String())
		n++
	}
	b.WriteString("}")
	return b.String()
}

/*
Collection holds the elements of a SEQUENCE OF or SET OF.
*/
type Collection struct {
	kind  Kind
	elems []Value
}

/*
NewSequenceOf returns a SEQUENCE OF *[Collection] holding elems.
*/
func NewSequenceOf(elems ...Value) *Collection {
	return &Collection{kind: KindSequenceOf, elems: append([]Value(nil), elems...)}
}

/*
NewSetOf returns a SET OF *[Collection] holding elems. Elements are
sorted by their encoding when encoded, so a decoded copy may hold them
in another order; [Equal] disregards the order of SET OF elements.
*/
func NewSetOf(elems ...Value) *Collection {
	return &Collection{kind: KindSetOf, elems: append([]Value(nil), elems...)}
}

/*
Elems returns the elements of the receiver instance.
*/
func (r *Collection) Elems() []Value {
	if r == nil {
		return nil
	}
	return append([]Value(nil), r.elems...)
}

/*
At returns the element at index i, or nil if i is out of range.
*/
func (r *Collection) At(i int) Value {
	if r == nil || i < 0 || i >= len(r.elems) {
		return nil
	}
	return r.elems[i]
}

func (r *Collection) Len() int {
	if r == nil {
		return 0
	}
	return len(r.elems)
}

func (r *Collection) Kind() Kind {
	if r == nil {
		return KindSequenceOf
	}
	return r.kind
}

func (*Collection) isValue() {}
func (r *Collection) String() string {
	elems := r.Elems()
	x := make([]string, len(elems))
	for i, e := range elems {
		x[i] = e.String()
	}
	return "[" + join(x, ", ") + "]"
}

/*
Chosen holds the selected alternative of a CHOICE.
*/
type Chosen struct {
	Name  string
	Value Value
}

func (r Chosen) Kind() Kind     { return KindChoice }
func (r Chosen) String() string { return r.Name + ": " + r.Value.String() }
func (Chosen) isValue()         {}

/*
Equal returns a Boolean value indicative of a and b holding the same
value. Absent (nil) values are equal only to each other. SET OF
elements are compared without regard to order. An [Unresolved]
node never equals a [Resolved] node, even if both stem from the same
bytes.
*/
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	} else if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case Boolean, Enumerated, Null, ObjectIdentifier, String:
		return a == b
	case Integer:
		y, ok := b.(Integer)
		return ok && x.Big().Cmp(y.Big()) == 0
	case BitString:
		y, ok := b.(BitString)
		return ok && x.BitLength == y.BitLength && bytes.Equal(x.Bytes, y.Bytes)
	case OctetString:
		y, ok := b.(OctetString)
		return ok && bytes.Equal(x, y)
	case Raw:
		y, ok := b.(Raw)
		return ok && bytes.Equal(x, y)
	case Time:
		y, ok := b.(Time)
		return ok && x.t.Equal(y.t)
	case *Sequence:
		y, ok := b.(*Sequence)
		return ok && sequenceEqual(x, y)
	case *Collection:
		y, ok := b.(*Collection)
		return ok && collectionEqual(x, y)
	case Chosen:
		y, ok := b.(Chosen)
		return ok && x.Name == y.Name && Equal(x.Value, y.Value)
	case *Unresolved:
		y, ok := b.(*Unresolved)
		return ok && x.ID == y.ID && bytes.Equal(x.Bytes, y.Bytes)
	case *Resolved:
		y, ok := b.(*Resolved)
		return ok && x.ID == y.ID && Equal(x.Value, y.Value)
	}

	return false
}

func sequenceEqual(a, b *Sequence) bool {
	present := func(s *Sequence) (out []FieldValue) {
		for _, f := range s.fields {
			if f.Value != nil {
				out = append(out, f)
			}
		}
		return
	}

	fa, fb := present(a), present(b)
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if fa[i].Name != fb[i].Name || !Equal(fa[i].Value, fb[i].Value) {
			return false
		}
	}
	return true
}

func collectionEqual(a, b *Collection) bool {
	if a.Len() != b.Len() {
		return false
	} else if a.Kind() == KindSetOf {
		return setEqual(a.Elems(), b.Elems())
	}
	for i := range a.elems {
		if !Equal(a.elems[i], b.elems[i]) {
			return false
		}
	}
	return true
}

/*
setEqual pairs every element of a with a distinct, equal element of b.
*/
func setEqual(a, b []Value) bool {
	used := make([]bool, len(b))
	for _, x := range a {
		var found bool
		for j, y := range b {
			if !used[j] && Equal(x, y) {
				used[j], found = true, true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
