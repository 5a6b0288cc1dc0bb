/*
Package rfc4055 declares the additional RSA algorithms and identifiers
of RFC 4055: RSASSA-PSS signatures, RSAES-OAEP key transport, the MGF1
mask generation function and the SHA-2 one-way hash functions.
*/
package rfc4055

import (
	"github.com/JesseCoretta/go-asn1pkix"
	"github.com/JesseCoretta/go-asn1pkix/rfc5280"
)

var (
	pkcs1 = rfc5280.PKCS1
	nist  = asn1pkix.MustObjectIdentifier("2.16.840.1.101.3.4.2")
)

var (
	IDRSAESOAEP  = pkcs1.Append(7)
	IDMGF1       = pkcs1.Append(8)
	IDPSpecified = pkcs1.Append(9)
	IDRSASSAPSS  = pkcs1.Append(10)

	SHA256WithRSAEncryption = pkcs1.Append(11)
	SHA384WithRSAEncryption = pkcs1.Append(12)
	SHA512WithRSAEncryption = pkcs1.Append(13)
	SHA224WithRSAEncryption = pkcs1.Append(14)

	IDSHA256 = nist.Append(1)
	IDSHA384 = nist.Append(2)
	IDSHA512 = nist.Append(3)
	IDSHA224 = nist.Append(4)
)

/*
TrailerFieldBC is the only trailer field value defined for RSASSA-PSS.
*/
var TrailerFieldBC = asn1pkix.NewInteger(1)

/*
Default values of the RSASSA-PSS and RSAES-OAEP parameters. Their
parameters are held as [asn1pkix.Unresolved] nodes and match resolved
values of the same encoding.
*/
var (
	SHA1Identifier = asn1pkix.NewSequence(
		asn1pkix.FieldValue{Name: "algorithm", Value: rfc5280.IDSHA1},
		asn1pkix.FieldValue{Name: "parameters", Value: &asn1pkix.Unresolved{
			ID: rfc5280.IDSHA1, Bytes: []byte{0x05, 0x00}}},
	)

	MGF1SHA1Identifier = asn1pkix.NewSequence(
		asn1pkix.FieldValue{Name: "algorithm", Value: IDMGF1},
		asn1pkix.FieldValue{Name: "parameters", Value: &asn1pkix.Unresolved{
			ID: IDMGF1, Bytes: []byte{ // sha1Identifier
				0x30, 0x09, 0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x1a, 0x05, 0x00}}},
	)

	PSpecifiedEmptyIdentifier = asn1pkix.NewSequence(
		asn1pkix.FieldValue{Name: "algorithm", Value: IDPSpecified},
		asn1pkix.FieldValue{Name: "parameters", Value: &asn1pkix.Unresolved{
			ID: IDPSpecified, Bytes: []byte{0x04, 0x00}}},
	)
)

var (
	HashAlgorithm    = rfc5280.AlgorithmIdentifier.Named("HashAlgorithm")
	MaskGenAlgorithm = rfc5280.AlgorithmIdentifier.Named("MaskGenAlgorithm")
	TrailerField     = asn1pkix.IntegerType().Named("TrailerField")

	RSASSAPSSParams = asn1pkix.SequenceType("RSASSA-PSS-params",
		asn1pkix.Defaulted("hashAlgorithm", HashAlgorithm.Explicit(0), SHA1Identifier),
		asn1pkix.Defaulted("maskGenAlgorithm", MaskGenAlgorithm.Explicit(1), MGF1SHA1Identifier),
		asn1pkix.Defaulted("saltLength", asn1pkix.IntegerType().Explicit(2), asn1pkix.NewInteger(20)),
		asn1pkix.Defaulted("trailerField", TrailerField.Explicit(3), TrailerFieldBC),
	)

	RSAESOAEPParams = asn1pkix.SequenceType("RSAES-OAEP-params",
		asn1pkix.Defaulted("hashFunc", rfc5280.AlgorithmIdentifier.Explicit(0), SHA1Identifier),
		asn1pkix.Defaulted("maskGenFunc", rfc5280.AlgorithmIdentifier.Explicit(1), MGF1SHA1Identifier),
		asn1pkix.Defaulted("pSourceFunc", rfc5280.AlgorithmIdentifier.Explicit(2), PSpecifiedEmptyIdentifier),
	)

	EncodingParameters = asn1pkix.OctetStringType().Named("EncodingParameters")
)

var nullParameters = asn1pkix.NullType()

/*
AlgorithmParameters maps the algorithms of this package to the syntax
of their parameters.
*/
var AlgorithmParameters = asn1pkix.Mapping{
	{OID: IDSHA224, Schema: nullParameters},
	{OID: IDSHA256, Schema: nullParameters},
	{OID: IDSHA384, Schema: nullParameters},
	{OID: IDSHA512, Schema: nullParameters},
	{OID: SHA224WithRSAEncryption, Schema: nullParameters},
	{OID: SHA256WithRSAEncryption, Schema: nullParameters},
	{OID: SHA384WithRSAEncryption, Schema: nullParameters},
	{OID: SHA512WithRSAEncryption, Schema: nullParameters},
	{OID: IDMGF1, Schema: MaskGenAlgorithm},
	{OID: IDPSpecified, Schema: EncodingParameters},
	{OID: IDRSAESOAEP, Schema: RSAESOAEPParams},
	{OID: IDRSASSAPSS, Schema: RSASSAPSSParams},
}

/*
Module is the registry contribution of this package.
*/
var Module = asn1pkix.Module{
	Name:     "rfc4055",
	Requires: []string{rfc5280.Module.Name},
	Deltas: []asn1pkix.Delta{
		{Domain: asn1pkix.DomainAlgorithmParameters, Mapping: AlgorithmParameters},
	},
}
