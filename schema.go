package asn1pkix

/*
schema.go contains the Schema type, which describes the shape of a
DER-encoded value, and the constructors used by schema modules to
declare them.
*/

import (
	"bytes"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

/*
Kind identifies the ASN.1 type described by a [Schema], or held by
a [Value].
*/
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBoolean
	KindInteger
	KindEnumerated
	KindBitString
	KindOctetString
	KindNull
	KindOID
	KindUTF8String
	KindNumericString
	KindPrintableString
	KindTeletexString
	KindIA5String
	KindVisibleString
	KindUniversalString
	KindBMPString
	KindUTCTime
	KindGeneralizedTime
	KindAny
	KindSequence
	KindSequenceOf
	KindSetOf
	KindChoice
	KindOpen
)

var kindNames = [...]string{
	KindInvalid:         "INVALID",
	KindBoolean:         "BOOLEAN",
	KindInteger:         "INTEGER",
	KindEnumerated:      "ENUMERATED",
	KindBitString:       "BIT STRING",
	KindOctetString:     "OCTET STRING",
	KindNull:            "NULL",
	KindOID:             "OBJECT IDENTIFIER",
	KindUTF8String:      "UTF8String",
	KindNumericString:   "NumericString",
	KindPrintableString: "PrintableString",
	KindTeletexString:   "TeletexString",
	KindIA5String:       "IA5String",
	KindVisibleString:   "VisibleString",
	KindUniversalString: "UniversalString",
	KindBMPString:       "BMPString",
	KindUTCTime:         "UTCTime",
	KindGeneralizedTime: "GeneralizedTime",
	KindAny:             "ANY",
	KindSequence:        "SEQUENCE",
	KindSequenceOf:      "SEQUENCE OF",
	KindSetOf:           "SET OF",
	KindChoice:          "CHOICE",
	KindOpen:            "OPEN TYPE",
}

/*
String returns the ASN.1 notation name of the receiver instance.
*/
func (r Kind) String() string {
	if int(r) < len(kindNames) {
		return kindNames[r]
	}
	return kindNames[KindInvalid]
}

var universalTags = map[Kind]int{
	KindBoolean:         TagBoolean,
	KindInteger:         TagInteger,
	KindEnumerated:      TagEnum,
	KindBitString:       TagBitString,
	KindOctetString:     TagOctetString,
	KindNull:            TagNull,
	KindOID:             TagOID,
	KindUTF8String:      TagUTF8String,
	KindNumericString:   TagNumericString,
	KindPrintableString: TagPrintableString,
	KindTeletexString:   TagT61String,
	KindIA5String:       TagIA5String,
	KindVisibleString:   TagVisibleString,
	KindUniversalString: TagUniversalString,
	KindBMPString:       TagBMPString,
	KindUTCTime:         TagUTCTime,
	KindGeneralizedTime: TagGeneralizedTime,
	KindSequence:        TagSequence,
	KindSequenceOf:      TagSequence,
	KindSetOf:           TagSet,
}

/*
IsString returns a Boolean value indicative of the receiver being one
of the restricted character string kinds.
*/
func (r Kind) IsString() bool { return KindUTF8String <= r && r <= KindBMPString }

/*
IsTime returns a Boolean value indicative of the receiver being UTCTime
or GeneralizedTime.
*/
func (r Kind) IsTime() bool { return r == KindUTCTime || r == KindGeneralizedTime }

func (r Kind) isPrimitive() bool { return KindBoolean <= r && r <= KindGeneralizedTime }

func (r Kind) isConstructed() bool {
	return r == KindSequence || r == KindSequenceOf || r == KindSetOf
}

/*
Domain identifies an independent namespace of OID to [Schema] mappings,
one per kind of open-type usage.
*/
type Domain string

/*
Registry domains used by the schema modules of this project. Modules
may declare additional domains of their own.
*/
const (
	DomainCertificateExtensions Domain = "certificate-extensions"
	DomainAlgorithmParameters   Domain = "algorithm-parameters"
	DomainAttributeTypes        Domain = "attribute-types"
	DomainContentTypes          Domain = "content-types"
	DomainOtherNames            Domain = "other-names"
)

/*
String returns the string representation of the receiver instance.
*/
func (r Domain) String() string { return string(r) }

/*
Carrier describes how the opaque value of an open type appears on the
wire.
*/
type Carrier uint8

const (
	// CarrierElement: the open value is one complete element, as with
	// AlgorithmIdentifier.parameters.
	CarrierElement Carrier = iota

	// CarrierOctetString: the open value is the DER encoding held within
	// an OCTET STRING, as with Extension.extnValue.
	CarrierOctetString
)

type openRef struct {
	domain  Domain
	sibling string
	carrier Carrier
}

/*
Field is one named component of a SEQUENCE, or one named alternative
of a CHOICE.

A non-nil Default implies Optional: a value whose encoding equals that
of Default is omitted on encode and implied on decode. Open type nodes
within Default therefore match both their [Unresolved] and [Resolved]
forms. Default must not be modified once the Field is in use.
*/
type Field struct {
	Name     string
	Type     *Schema
	Optional bool
	Default  Value
}

/*
Required returns a mandatory [Field].
*/
func Required(name string, t *Schema) Field { return Field{Name: name, Type: t} }

/*
Optional returns an OPTIONAL [Field].
*/
func Optional(name string, t *Schema) Field { return Field{Name: name, Type: t, Optional: true} }

/*
Defaulted returns a [Field] with a DEFAULT value.
*/
func Defaulted(name string, t *Schema, def Value) Field {
	return Field{Name: name, Type: t, Optional: true, Default: def}
}

/*
Alt returns a CHOICE alternative. It is shorthand for [Required].
*/
func Alt(name string, t *Schema) Field { return Required(name, t) }

func (r Field) absentAllowed() bool { return r.Optional || r.Default != nil }

/*
isDefault returns a Boolean value indicative of der, one complete
element, being the encoding of the receiver's DEFAULT value.
*/
func (r Field) isDefault(der []byte) bool {
	if r.Default == nil {
		return false
	}
	enc := &encoder{cfg: newCodecConfig(nil)}
	def, err := nested(func(c *cryptobyte.Builder) error {
		return enc.encode(c, r.Default, r.Type, "", 1)
	})
	return err == nil && bytes.Equal(def, der)
}

/*
Schema describes the shape of a value: a primitive, a SEQUENCE of named
fields, a SEQUENCE OF or SET OF one element type, a CHOICE of named
alternatives, or an open type resolved through a registry [Domain].

Instances are immutable. Every method that alters an aspect of a
Schema returns a modified copy.
*/
type Schema struct {
	name        string
	kind        Kind
	class       int
	tag         int // -1 when untagged
	explicit    bool
	fields      []Field
	elem        *Schema
	constraints ConstraintGroup
	open        *openRef
}

func newSchema(kind Kind, c ...Constraint) *Schema {
	return &Schema{kind: kind, tag: -1, constraints: append(ConstraintGroup(nil), c...)}
}

/*
BooleanType returns a BOOLEAN [Schema].
*/
func BooleanType() *Schema { return newSchema(KindBoolean) }

/*
IntegerType returns an INTEGER [Schema] bearing the optional value
constraints (see [ValueRange]).
*/
func IntegerType(c ...Constraint) *Schema { return newSchema(KindInteger, c...) }

/*
EnumeratedType returns an ENUMERATED [Schema].
*/
func EnumeratedType(c ...Constraint) *Schema { return newSchema(KindEnumerated, c...) }

/*
BitStringType returns a BIT STRING [Schema]. Size constraints count bits.
*/
func BitStringType(c ...Constraint) *Schema { return newSchema(KindBitString, c...) }

/*
OctetStringType returns an OCTET STRING [Schema]. Size constraints
count octets.
*/
func OctetStringType(c ...Constraint) *Schema { return newSchema(KindOctetString, c...) }

/*
NullType returns a NULL [Schema].
*/
func NullType() *Schema { return newSchema(KindNull) }

/*
OIDType returns an OBJECT IDENTIFIER [Schema].
*/
func OIDType() *Schema { return newSchema(KindOID) }

/*
StringType returns a restricted character string [Schema] of kind k.
Size constraints count characters. StringType panics if k is not a
string kind.
*/
func StringType(k Kind, c ...Constraint) *Schema {
	if !k.IsString() {
		panic("asn1pkix: StringType: not a string kind: " + k.String())
	}
	return newSchema(k, c...)
}

/*
UTCTimeType returns a UTCTime [Schema].
*/
func UTCTimeType() *Schema { return newSchema(KindUTCTime) }

/*
GeneralizedTimeType returns a GeneralizedTime [Schema].
*/
func GeneralizedTimeType() *Schema { return newSchema(KindGeneralizedTime) }

/*
AnyType returns an ANY [Schema]: a single element of any tag, kept as
raw bytes.
*/
func AnyType() *Schema { return newSchema(KindAny) }

/*
SequenceType returns a SEQUENCE [Schema] named name.
*/
func SequenceType(name string, fields ...Field) *Schema {
	s := newSchema(KindSequence)
	s.name = name
	s.fields = append([]Field(nil), fields...)
	return s
}

/*
SequenceOfType returns a SEQUENCE OF [Schema] named name. Size
constraints count elements.
*/
func SequenceOfType(name string, elem *Schema, c ...Constraint) *Schema {
	s := newSchema(KindSequenceOf, c...)
	s.name = name
	s.elem = elem
	return s
}

/*
SetOfType returns a SET OF [Schema] named name. Size constraints count
elements.
*/
func SetOfType(name string, elem *Schema, c ...Constraint) *Schema {
	s := newSchema(KindSetOf, c...)
	s.name = name
	s.elem = elem
	return s
}

/*
ChoiceType returns a CHOICE [Schema] named name. Alternatives must have
distinct outermost tags.
*/
func ChoiceType(name string, alts ...Field) *Schema {
	s := newSchema(KindChoice)
	s.name = name
	s.fields = append([]Field(nil), alts...)
	return s
}

/*
OpenType returns an "ANY DEFINED BY sibling" [Schema]. The concrete
type is found by looking up the OID held in the sibling field of the
enclosing SEQUENCE within the registry [Domain] d.
*/
func OpenType(d Domain, sibling string) *Schema {
	s := newSchema(KindOpen)
	s.open = &openRef{domain: d, sibling: sibling, carrier: CarrierElement}
	return s
}

/*
OpenOctetStringType is like [OpenType], except the open value is
carried within an OCTET STRING, as is the case for X.509 extension
values.
*/
func OpenOctetStringType(d Domain, sibling string) *Schema {
	s := OpenType(d, sibling)
	s.open.carrier = CarrierOctetString
	return s
}

func (r *Schema) clone() *Schema {
	c := *r
	return &c
}

/*
Named returns a copy of the receiver instance bearing name n.
*/
func (r *Schema) Named(n string) *Schema {
	c := r.clone()
	c.name = n
	return c
}

/*
Implicit returns a copy of the receiver instance bearing an IMPLICIT
context-specific tag. See also [Schema.ImplicitClass].
*/
func (r *Schema) Implicit(tag int) *Schema { return r.ImplicitClass(ClassContextSpecific, tag) }

/*
ImplicitClass returns a copy of the receiver instance bearing an
IMPLICIT tag of the given class. CHOICE and open types cannot be
implicitly tagged; for those the tag is made EXPLICIT. An implicitly
tagged ANY accepts any content, primitive or constructed, under the
given tag.
*/
func (r *Schema) ImplicitClass(class, tag int) *Schema {
	c := r.retag(class, tag)
	c.explicit = r.kind == KindChoice || r.kind == KindOpen
	return c
}

/*
Explicit returns a copy of the receiver instance bearing an EXPLICIT
context-specific tag. See also [Schema.ExplicitClass].
*/
func (r *Schema) Explicit(tag int) *Schema { return r.ExplicitClass(ClassContextSpecific, tag) }

/*
ExplicitClass returns a copy of the receiver instance bearing an
EXPLICIT tag of the given class.
*/
func (r *Schema) ExplicitClass(class, tag int) *Schema {
	c := r.retag(class, tag)
	c.explicit = true
	return c
}

func (r *Schema) retag(class, tag int) *Schema {
	if tag < 0 || tag > maxLowTag {
		panic("asn1pkix: tag out of range: " + itoa(tag))
	} else if class < ClassUniversal || class > ClassPrivate {
		panic("asn1pkix: invalid class: " + itoa(class))
	} else if r.tag >= 0 {
		panic("asn1pkix: schema " + r.String() + " is already tagged")
	}
	c := r.clone()
	c.class, c.tag = class, tag
	return c
}

/*
Constrain returns a copy of the receiver instance with c appended to
its constraints.
*/
func (r *Schema) Constrain(c ...Constraint) *Schema {
	n := r.clone()
	n.constraints = append(append(ConstraintGroup(nil), r.constraints...), c...)
	return n
}

/*
Name returns the name of the receiver instance, if one was assigned.
*/
func (r *Schema) Name() string { return r.name }

/*
Kind returns the [Kind] of the receiver instance.
*/
func (r *Schema) Kind() Kind { return r.kind }

/*
Fields returns the SEQUENCE fields or CHOICE alternatives of the
receiver instance.
*/
func (r *Schema) Fields() []Field { return append([]Field(nil), r.fields...) }

/*
Field returns the field or alternative bearing name n.
*/
func (r *Schema) Field(n string) (Field, bool) {
	for _, f := range r.fields {
		if f.Name == n {
			return f, true
		}
	}
	return Field{}, false
}

/*
Elem returns the element [Schema] of a SEQUENCE OF or SET OF.
*/
func (r *Schema) Elem() *Schema { return r.elem }

/*
Tagging returns the class and number of the tag applied to the receiver
instance, whether it is EXPLICIT, and whether it is tagged at all.
*/
func (r *Schema) Tagging() (class, tag int, explicit, ok bool) {
	return r.class, r.tag, r.explicit, r.tag >= 0
}

/*
OpenDomain returns the registry [Domain], sibling field name and
[Carrier] of an open type [Schema]. The Boolean is false for any
other kind.
*/
func (r *Schema) OpenDomain() (d Domain, sibling string, carrier Carrier, ok bool) {
	if r.open != nil {
		d, sibling, carrier, ok = r.open.domain, r.open.sibling, r.open.carrier, true
	}
	return
}

/*
String returns the name of the receiver instance or, failing that, the
name of its [Kind].
*/
func (r *Schema) String() string {
	if r == nil {
		return "<nil schema>"
	} else if r.name != "" {
		return r.name
	}
	return r.kind.String()
}

func classBits(class int) asn1.Tag { return asn1.Tag(uint8(class) << 6) }

/*
innerTag returns the identifier octet of the receiver instance with
any EXPLICIT wrapper removed, and false when the element may bear any
tag (untagged CHOICE, ANY and element-carried open types).
*/
func (r *Schema) innerTag() (asn1.Tag, bool) {
	if r.tag >= 0 && !r.explicit {
		t := classBits(r.class) | asn1.Tag(r.tag)
		if r.kind.isConstructed() {
			t = t.Constructed()
		}
		return t, true
	}

	switch r.kind {
	case KindChoice, KindAny:
		return 0, false
	case KindOpen:
		if r.open.carrier == CarrierOctetString {
			return asn1.OCTET_STRING, true
		}
		return 0, false
	}

	t := asn1.Tag(universalTags[r.kind])
	if r.kind.isConstructed() {
		t = t.Constructed()
	}
	return t, true
}

/*
outerTag returns the identifier octet expected on the wire for the
receiver instance.
*/
func (r *Schema) outerTag() (asn1.Tag, bool) {
	if r.tag >= 0 && r.explicit {
		return (classBits(r.class) | asn1.Tag(r.tag)).Constructed(), true
	}
	return r.innerTag()
}

/*
matches returns a Boolean value indicative of an element bearing tag
being acceptable to the receiver instance.
*/
func (r *Schema) matches(tag asn1.Tag) bool {
	if r.kind == KindAny && r.tag >= 0 && !r.explicit {
		t, _ := r.innerTag()
		return tag&^0x20 == t
	} else if t, ok := r.outerTag(); ok {
		return t == tag
	} else if r.kind == KindChoice {
		for _, alt := range r.fields {
			if alt.Type.matches(tag) {
				return true
			}
		}
		return false
	}
	return true
}

func describeTag(t asn1.Tag) string {
	return tagString(int(t>>6), int(t&0x1f))
}
