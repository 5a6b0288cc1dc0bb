package asn1pkix

import (
	"bytes"
	"testing"
)

const testDomain Domain = "test"

var (
	testOIDA = MustObjectIdentifier("1.2.3.4")
	testOIDB = MustObjectIdentifier("1.2.3.5")
	testOIDC = MustObjectIdentifier("1.2.3.6")

	testAlgorithm = SequenceType("TestAlgorithm",
		Required("algorithm", OIDType()),
		Optional("parameters", OpenType(testDomain, "algorithm")),
	)

	testExtension = SequenceType("TestExtension",
		Required("extnID", OIDType()),
		Defaulted("critical", BooleanType(), Boolean(false)),
		Required("extnValue", OpenOctetStringType(testDomain, "extnID")),
	)
)

/*
tlv returns a DER element bearing tag, whose content is the
concatenation of parts.
*/
func tlv(tag byte, parts ...[]byte) []byte {
	body := bytes.Join(parts, nil)
	n := len(body)

	var hdr []byte
	switch {
	case n < 0x80:
		hdr = []byte{tag, byte(n)}
	case n < 0x100:
		hdr = []byte{tag, 0x81, byte(n)}
	default:
		hdr = []byte{tag, 0x82, byte(n >> 8), byte(n)}
	}
	return append(hdr, body...)
}

func oidDER(id ObjectIdentifier) []byte { return tlv(0x06, id.Bytes()) }

func seqDER(parts ...[]byte) []byte { return tlv(0x30, parts...) }

func mustString(t *testing.T, k Kind, text string) String {
	t.Helper()
	s, err := NewString(k, text)
	if err != nil {
		t.Fatalf("%s failed [NewString]: %v", t.Name(), err)
	}
	return s
}

func TestTagString(t *testing.T) {
	for _, tc := range []struct {
		class, tag int
		want       string
	}{
		{ClassContextSpecific, 3, "[3]"},
		{ClassUniversal, TagSequence, "SEQUENCE"},
		{ClassApplication, 1, "[APPLICATION 1]"},
		{ClassPrivate, 7, "[PRIVATE 7]"},
	} {
		if got := tagString(tc.class, tc.tag); got != tc.want {
			t.Fatalf("%s failed:\n\twant: %s\n\tgot:  %s", t.Name(), tc.want, got)
		}
	}
}
