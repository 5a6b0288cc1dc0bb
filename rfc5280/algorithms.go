package rfc5280

import "github.com/JesseCoretta/go-asn1pkix"

var (
	// absent or NULL, as used by the PKCS #1 v1.5 and SHA-1 identifiers
	nullParameters = asn1pkix.NullType()

	DSSParms = asn1pkix.SequenceType("Dss-Parms",
		asn1pkix.Required("p", asn1pkix.IntegerType()),
		asn1pkix.Required("q", asn1pkix.IntegerType()),
		asn1pkix.Required("g", asn1pkix.IntegerType()),
	)

	ECParameters = asn1pkix.ChoiceType("ECParameters",
		asn1pkix.Alt("namedCurve", asn1pkix.OIDType()),
		asn1pkix.Alt("implicitCurve", asn1pkix.NullType()),
		asn1pkix.Alt("specifiedCurve", asn1pkix.AnyType()),
	)
)

/*
AlgorithmParameters maps the PKIX1 algorithms to the syntax of their
parameters.
*/
var AlgorithmParameters = asn1pkix.Mapping{
	{OID: RSAEncryption, Schema: nullParameters},
	{OID: MD2WithRSAEncryption, Schema: nullParameters},
	{OID: MD5WithRSAEncryption, Schema: nullParameters},
	{OID: SHA1WithRSAEncryption, Schema: nullParameters},
	{OID: IDSHA1, Schema: nullParameters},
	{OID: IDDSA, Schema: DSSParms},
	{OID: IDECPublicKey, Schema: ECParameters},
}
