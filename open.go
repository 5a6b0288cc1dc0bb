package asn1pkix

/*
open.go contains the two representations of an open type node: one
left opaque and one decoded through a registry lookup.
*/

/*
Unresolved is an open type node which was not decoded. Bytes holds the
open value exactly as it appeared on the wire: one complete element for
[CarrierElement], or the content of the OCTET STRING for
[CarrierOctetString].

ID holds the discriminating OID when the sibling field was present;
otherwise it is the zero [ObjectIdentifier]. Error offsets reported
while resolving a node built by hand are relative to Bytes.
*/
type Unresolved struct {
	ID    ObjectIdentifier
	Bytes []byte

	off int // position of Bytes within the decoded input
}

func (r *Unresolved) Kind() Kind { return KindOpen }
func (*Unresolved) isValue()     {}

/*
String returns a short description of the receiver instance, e.g.:
"<opaque 2.16.840.1.113730.1.13: 1609...>".
*/
func (r *Unresolved) String() string {
	id := "?"
	if !r.ID.IsZero() {
		id = r.ID.String()
	}
	return "<opaque " + id + ": " + hexstr(r.Bytes) + ">"
}

/*
Resolved is an open type node whose bytes were decoded with the [Schema]
registered for ID.
*/
type Resolved struct {
	ID     ObjectIdentifier
	Value  Value
	Schema *Schema
}

func (r *Resolved) Kind() Kind { return KindOpen }
func (*Resolved) isValue()     {}

/*
String returns the string representation of the resolved value.
*/
func (r *Resolved) String() string {
	if r.Value == nil {
		return "<nil>"
	}
	return r.Value.String()
}
