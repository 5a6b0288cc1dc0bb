package rfc5652_test

import (
	"testing"
	"time"

	"github.com/JesseCoretta/go-asn1pkix"
	"github.com/JesseCoretta/go-asn1pkix/catalog"
	"github.com/JesseCoretta/go-asn1pkix/rfc4055"
	"github.com/JesseCoretta/go-asn1pkix/rfc5652"
	"github.com/stretchr/testify/require"
)

func TestContentInfo_data(t *testing.T) {
	// ContentInfo { id-data, [0] OCTET STRING "hello" }
	der := []byte{
		0x30, 0x14,
		0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x07, 0x01,
		0xa0, 0x07, 0x04, 0x05, 'h', 'e', 'l', 'l', 'o',
	}

	v, err := asn1pkix.Decode(der, rfc5652.ContentInfo, asn1pkix.WithOpenTypes(catalog.Default()))
	require.NoError(t, err)

	content, ok := asn1pkix.Select(v, "content")
	require.True(t, ok)
	r, ok := content.(*asn1pkix.Resolved)
	require.True(t, ok)
	require.True(t, r.ID.Eq(rfc5652.IDData))
	require.Equal(t, asn1pkix.OctetString("hello"), r.Value)

	out, err := asn1pkix.Encode(v, rfc5652.ContentInfo)
	require.NoError(t, err)
	require.Equal(t, der, out)
}

func TestContentInfo_signedData(t *testing.T) {
	sha256 := asn1pkix.NewSequence(
		asn1pkix.FieldValue{Name: "algorithm", Value: rfc4055.IDSHA256},
		asn1pkix.FieldValue{Name: "parameters", Value: &asn1pkix.Resolved{
			ID: rfc4055.IDSHA256, Value: asn1pkix.Null{}, Schema: asn1pkix.NullType()}},
	)

	sd := asn1pkix.NewSequence(
		asn1pkix.FieldValue{Name: "version", Value: rfc5652.V1},
		asn1pkix.FieldValue{Name: "digestAlgorithms", Value: asn1pkix.NewSetOf(sha256)},
		asn1pkix.FieldValue{Name: "encapContentInfo", Value: asn1pkix.NewSequence(
			asn1pkix.FieldValue{Name: "eContentType", Value: rfc5652.IDData},
			asn1pkix.FieldValue{Name: "eContent", Value: asn1pkix.OctetString("hi")},
		)},
		asn1pkix.FieldValue{Name: "signerInfos", Value: asn1pkix.NewSetOf()},
	)

	ci := asn1pkix.NewSequence(
		asn1pkix.FieldValue{Name: "contentType", Value: rfc5652.IDSignedData},
		asn1pkix.FieldValue{Name: "content", Value: &asn1pkix.Resolved{
			ID: rfc5652.IDSignedData, Value: sd, Schema: rfc5652.SignedData}},
	)

	der, err := asn1pkix.Encode(ci, rfc5652.ContentInfo)
	require.NoError(t, err)

	v, err := asn1pkix.Decode(der, rfc5652.ContentInfo, asn1pkix.WithOpenTypes(catalog.Default()))
	require.NoError(t, err)
	require.True(t, asn1pkix.Equal(ci, v), "got %s", v)

	eContent, ok := asn1pkix.Select(v, "content.encapContentInfo.eContent")
	require.True(t, ok)
	require.Equal(t, asn1pkix.OctetString("hi"), eContent)

	_, present := asn1pkix.Select(v, "content.certificates")
	require.False(t, present)
}

func TestSigningTime(t *testing.T) {
	// Attribute { signingTime, SET { UTCTime 210413195435Z } }
	der := append([]byte{
		0x30, 0x1c,
		0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x09, 0x05,
		0x31, 0x0f, 0x17, 0x0d,
	}, "210413195435Z"...)

	v, err := asn1pkix.Decode(der, rfc5652.Attribute, asn1pkix.WithOpenTypes(catalog.Default()))
	require.NoError(t, err)

	val, ok := asn1pkix.Select(v, "attrValues[0]")
	require.True(t, ok)
	r := val.(*asn1pkix.Resolved)
	require.Same(t, rfc5652.SigningTime, r.Schema)

	ch := r.Value.(asn1pkix.Chosen)
	require.Equal(t, "utcTime", ch.Name)
	require.True(t, ch.Value.(asn1pkix.Time).Time().Equal(time.Date(2021, 4, 13, 19, 54, 35, 0, time.UTC)))

	out, err := asn1pkix.Encode(v, rfc5652.Attribute)
	require.NoError(t, err)
	require.Equal(t, der, out)
}
