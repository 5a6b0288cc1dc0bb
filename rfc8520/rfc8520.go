/*
Package rfc8520 declares the Manufacturer Usage Description (MUD)
certificate extensions and the MUD file content type of RFC 8520.
*/
package rfc8520

import (
	"github.com/JesseCoretta/go-asn1pkix"
	"github.com/JesseCoretta/go-asn1pkix/rfc5280"
)

var (
	IDPEMUDURL    = rfc5280.IDPE.Append(25)
	IDPEMUDSigner = rfc5280.IDPE.Append(30)
	IDCTMUDType   = asn1pkix.MustObjectIdentifier("1.2.840.113549.1.9.16.1.41")
)

var (
	MUDURLSyntax    = asn1pkix.StringType(asn1pkix.KindIA5String).Named("MUDURLSyntax")
	MUDSignerSyntax = rfc5280.Name.Named("MUDsignerSyntax")
)

/*
Module is the registry contribution of this package.
*/
var Module = asn1pkix.Module{
	Name:     "rfc8520",
	Requires: []string{rfc5280.Module.Name},
	Deltas: []asn1pkix.Delta{{
		Domain: asn1pkix.DomainCertificateExtensions,
		Mapping: asn1pkix.Mapping{
			{OID: IDPEMUDURL, Schema: MUDURLSyntax},
			{OID: IDPEMUDSigner, Schema: MUDSignerSyntax},
		},
	}},
}
