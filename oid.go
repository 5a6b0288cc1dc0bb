package asn1pkix

/*
oid.go contains all types and methods pertaining to the ASN.1
OBJECT IDENTIFIER type.
*/

import "math/big"

/*
ObjectIdentifier implements an unbounded ASN.1 OBJECT IDENTIFIER (tag 6).

Instances are immutable and comparable: two instances are equal (==)
exactly when they identify the same object, which makes the type usable
as a map key. The zero value identifies nothing; see the
[ObjectIdentifier.IsZero] method.
*/
type ObjectIdentifier struct {
	der  string // DER content octets (no tag, no length)
	text string // dotted form, derived from der
}

/*
NewObjectIdentifier returns an instance of [ObjectIdentifier] alongside
an error following an attempt to parse x.

If a single string is supplied, it is treated as a complete dotted
number form (e.g.: "1.3.6.1"). Otherwise each input is treated as one
arc and may be any of:

  - *[math/big.Int]
  - uint64
  - int64
  - int
*/
func NewObjectIdentifier(x ...any) (r ObjectIdentifier, err error) {
	if len(x) == 1 {
		if dot, ok := x[0].(string); ok {
			return newObjectIdentifierStr(dot)
		}
	}

	arcs := make([]*big.Int, 0, len(x))
	for i := 0; i < len(x) && err == nil; i++ {
		var arc *big.Int
		switch tv := x[i].(type) {
		case *big.Int:
			if tv != nil {
				arc = new(big.Int).Set(tv)
			}
		case uint64:
			arc = new(big.Int).SetUint64(tv)
		case int64:
			arc = big.NewInt(tv)
		case int:
			arc = big.NewInt(int64(tv))
		}

		if arc == nil {
			err = schemaErrorf("OBJECT IDENTIFIER: unsupported arc type at position ", i)
		} else if arc.Sign() < 0 {
			err = schemaErrorf("OBJECT IDENTIFIER: number form values cannot be negative")
		}
		arcs = append(arcs, arc)
	}

	if err == nil {
		r, err = objectIdentifierFromArcs(arcs)
	}

	return
}

/*
MustObjectIdentifier is like [NewObjectIdentifier] but panics on error.
It is intended for the package-level OID declarations of schema modules.
*/
func MustObjectIdentifier(x ...any) ObjectIdentifier {
	r, err := NewObjectIdentifier(x...)
	if err != nil {
		panic(err)
	}
	return r
}

func newObjectIdentifierStr(dot string) (r ObjectIdentifier, err error) {
	if !isNumericOID(dot) {
		err = schemaErrorf("OBJECT IDENTIFIER: invalid OID ", dot)
		return
	}

	z := spl(dot, `.`)
	arcs := make([]*big.Int, len(z))
	for j := 0; j < len(z); j++ {
		var ok bool
		if arcs[j], ok = new(big.Int).SetString(z[j], 10); !ok {
			err = schemaErrorf("OBJECT IDENTIFIER: invalid arc ", z[j])
			return
		}
	}

	return objectIdentifierFromArcs(arcs)
}

func objectIdentifierFromArcs(arcs []*big.Int) (r ObjectIdentifier, err error) {
	if len(arcs) < 2 {
		err = schemaErrorf("OBJECT IDENTIFIER: an OID must have two (2) or more number forms")
		return
	}

	root := arcs[0]
	if root.Cmp(big.NewInt(2)) > 0 {
		err = schemaErrorf("OBJECT IDENTIFIER: root arc must be 0, 1 or 2")
		return
	} else if root.Cmp(big.NewInt(2)) < 0 && arcs[1].Cmp(big.NewInt(40)) >= 0 {
		err = schemaErrorf("OBJECT IDENTIFIER: second arc must be less than 40 under roots 0 and 1")
		return
	}

	// first subidentifier combines the two leading arcs
	first := new(big.Int).Mul(root, big.NewInt(40))
	first.Add(first, arcs[1])

	buf := vlqEncodeBig(first)
	for _, arc := range arcs[2:] {
		buf = append(buf, vlqEncodeBig(arc)...)
	}

	return newObjectIdentifierDER(buf), nil
}

func newObjectIdentifierDER(der []byte) ObjectIdentifier {
	r := ObjectIdentifier{der: string(der)}
	r.text = arcsString(r.Arcs())
	return r
}

/*
parseObjectIdentifier returns an [ObjectIdentifier] following a DER
verification of the input content octets.
*/
func parseObjectIdentifier(content []byte) (r ObjectIdentifier, err error) {
	if len(content) == 0 {
		err = mkerr("empty OBJECT IDENTIFIER")
		return
	} else if content[len(content)-1]&0x80 != 0 {
		err = mkerr("truncated OBJECT IDENTIFIER subidentifier")
		return
	}

	start := true
	for _, b := range content {
		if start && b == 0x80 {
			// leading 0x80 octet: subidentifier is not minimally encoded
			err = mkerr("non-minimal OBJECT IDENTIFIER subidentifier")
			return
		}
		start = b&0x80 == 0
	}

	r = newObjectIdentifierDER(content)
	return
}

func vlqEncodeBig(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0}
	}

	var out []byte
	tmp := new(big.Int).Set(n)
	rem := new(big.Int)
	b128 := big.NewInt(128)

	for tmp.Sign() != 0 {
		tmp.DivMod(tmp, b128, rem)
		b := byte(rem.Uint64())
		if len(out) > 0 { // continuation bit except on last octet
			b |= 0x80
		}
		out = append([]byte{b}, out...)
	}

	return out
}

/*
Arcs returns the number forms of the receiver instance. The return
value is a fresh copy and may be modified by the caller.
*/
func (r ObjectIdentifier) Arcs() (arcs []*big.Int) {
	if r.IsZero() {
		return
	}

	sub := new(big.Int)
	for i := 0; i < len(r.der); i++ {
		sub.Lsh(sub, 7)
		sub.Or(sub, big.NewInt(int64(r.der[i]&0x7f)))
		if r.der[i]&0x80 != 0 {
			continue
		}

		if len(arcs) == 0 {
			switch {
			case sub.Cmp(big.NewInt(40)) < 0:
				arcs = append(arcs, big.NewInt(0), new(big.Int).Set(sub))
			case sub.Cmp(big.NewInt(80)) < 0:
				arcs = append(arcs, big.NewInt(1), new(big.Int).Sub(sub, big.NewInt(40)))
			default:
				arcs = append(arcs, big.NewInt(2), new(big.Int).Sub(sub, big.NewInt(80)))
			}
		} else {
			arcs = append(arcs, new(big.Int).Set(sub))
		}
		sub = new(big.Int)
	}

	return
}

func arcsString(arcs []*big.Int) string {
	x := make([]string, len(arcs))
	for i := 0; i < len(arcs); i++ {
		x[i] = arcs[i].String()
	}
	return join(x, `.`)
}

/*
Append returns a new [ObjectIdentifier] formed by suffixing the input
number forms onto the receiver, e.g.: id-kp + (25).
*/
func (r ObjectIdentifier) Append(arcs ...uint64) ObjectIdentifier {
	if r.IsZero() || len(arcs) == 0 {
		return r
	}

	buf := []byte(r.der)
	for _, a := range arcs {
		buf = append(buf, vlqEncodeBig(new(big.Int).SetUint64(a))...)
	}

	return newObjectIdentifierDER(buf)
}

/*
String returns the dotted number form of the receiver instance.
*/
func (r ObjectIdentifier) String() string { return r.text }

/*
Eq returns a Boolean value indicative of an equality match between
the receiver and input [ObjectIdentifier] instances.
*/
func (r ObjectIdentifier) Eq(o ObjectIdentifier) bool { return r.der == o.der }

/*
Cmp compares the receiver with o arc by arc and returns -1, 0 or +1.
A shorter instance that prefixes a longer one sorts first.
*/
func (r ObjectIdentifier) Cmp(o ObjectIdentifier) int {
	a, b := r.Arcs(), o.Arcs()
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Cmp(b[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

/*
Len returns the number of arcs in the receiver instance.
*/
func (r ObjectIdentifier) Len() int { return len(r.Arcs()) }

/*
IsZero returns a Boolean indicative of a zero receiver state.
*/
func (r ObjectIdentifier) IsZero() bool { return len(r.der) == 0 }

/*
Bytes returns the DER content octets of the receiver instance.
*/
func (r ObjectIdentifier) Bytes() []byte { return []byte(r.der) }

/*
Kind returns [KindOID].
*/
func (r ObjectIdentifier) Kind() Kind { return KindOID }

func (ObjectIdentifier) isValue() {}

func isNumericOID(id string) bool {
	if !isValidOIDPrefix(id) {
		return false
	}

	var last rune
	for i, c := range id {
		switch {
		case c == '.':
			if last == c || i == len(id)-1 {
				return false
			}
			last = '.'
		case '0' <= c && c <= '9':
			last = c
		default:
			return false
		}
	}

	return true
}

func isValidOIDPrefix(id string) bool {
	slices := spl(id, `.`)
	if len(slices) < 2 {
		return false
	}

	root, err := atoi(slices[0])
	if err != nil || !(0 <= root && root <= 2) {
		return false
	}

	if root == 2 {
		return true
	}

	sub, err := atoi(slices[1])
	return err == nil && 0 <= sub && sub <= 39
}
