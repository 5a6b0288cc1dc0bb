package rfc8737_test

import (
	"bytes"
	"testing"

	"github.com/JesseCoretta/go-asn1pkix"
	"github.com/JesseCoretta/go-asn1pkix/catalog"
	"github.com/JesseCoretta/go-asn1pkix/rfc5280"
	"github.com/JesseCoretta/go-asn1pkix/rfc8737"
	"github.com/stretchr/testify/require"
)

/*
acmeExtension returns the DER encoding of a critical acmeIdentifier
extension whose Authorization holds n octets.
*/
func acmeExtension(t *testing.T, n int) []byte {
	t.Helper()
	digest := bytes.Repeat([]byte{0xa5}, n)

	ext := asn1pkix.NewSequence(
		asn1pkix.FieldValue{Name: "extnID", Value: rfc8737.IDPEACMEIdentifier},
		asn1pkix.FieldValue{Name: "critical", Value: asn1pkix.Boolean(true)},
		asn1pkix.FieldValue{Name: "extnValue", Value: &asn1pkix.Unresolved{
			Bytes: append([]byte{0x04, byte(n)}, digest...),
		}},
	)

	der, err := asn1pkix.Encode(ext, rfc5280.Extension)
	if err != nil {
		t.Fatalf("%s failed [encoding]: %v", t.Name(), err)
	}
	return der
}

func TestAuthorization(t *testing.T) {
	der := acmeExtension(t, 32)

	v, err := asn1pkix.Decode(der, rfc5280.Extension, asn1pkix.WithOpenTypes(catalog.Default()))
	require.NoError(t, err)

	val, ok := asn1pkix.Select(v, "extnValue")
	require.True(t, ok)
	r, ok := val.(*asn1pkix.Resolved)
	require.True(t, ok)
	require.True(t, r.ID.Eq(rfc8737.IDPEACMEIdentifier))
	require.Equal(t, asn1pkix.OctetString(bytes.Repeat([]byte{0xa5}, 32)), r.Value)

	owner, _ := catalog.Default().Owner(asn1pkix.DomainCertificateExtensions, rfc8737.IDPEACMEIdentifier)
	require.Equal(t, "rfc8737", owner)

	out, err := asn1pkix.Encode(v, rfc5280.Extension)
	require.NoError(t, err)
	require.Equal(t, der, out)
}

func TestAuthorization_wrongSize(t *testing.T) {
	der := acmeExtension(t, 31)

	// raw mode does not look inside the extension
	_, err := asn1pkix.Decode(der, rfc5280.Extension)
	require.NoError(t, err)

	v, err := asn1pkix.Decode(der, rfc5280.Extension, asn1pkix.WithOpenTypes(catalog.Default()))
	require.Nil(t, v)
	require.ErrorIs(t, err, asn1pkix.ErrConstraintViolation)

	var cerr *asn1pkix.CodecError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, "extnValue", cerr.Path)
	require.Equal(t, 17, cerr.Offset)
	require.True(t, cerr.OID.Eq(rfc8737.IDPEACMEIdentifier))

	// nor will a 31 octet Authorization be encoded
	_, err = asn1pkix.Encode(asn1pkix.NewSequence(
		asn1pkix.FieldValue{Name: "extnID", Value: rfc8737.IDPEACMEIdentifier},
		asn1pkix.FieldValue{Name: "extnValue", Value: &asn1pkix.Resolved{
			ID:     rfc8737.IDPEACMEIdentifier,
			Value:  asn1pkix.OctetString(make([]byte, 31)),
			Schema: rfc8737.Authorization,
		}},
	), rfc5280.Extension)
	require.ErrorIs(t, err, asn1pkix.ErrConstraintViolation)
}
