/*
Package rfc8995 declares the MASA URL certificate extension of the
Bootstrapping Remote Secure Key Infrastructure (RFC 8995).
*/
package rfc8995

import (
	"github.com/JesseCoretta/go-asn1pkix"
	"github.com/JesseCoretta/go-asn1pkix/rfc5280"
)

// IDPEMASAURL identifies the MASA URL extension.
var IDPEMASAURL = rfc5280.IDPE.Append(32)

// MASAURLSyntax is the syntax of the MASA URL extension value.
var MASAURLSyntax = asn1pkix.StringType(asn1pkix.KindIA5String).Named("MASAURLSyntax")

/*
Module is the registry contribution of this package.
*/
var Module = asn1pkix.Module{
	Name:     "rfc8995",
	Requires: []string{rfc5280.Module.Name},
	Deltas: []asn1pkix.Delta{{
		Domain:  asn1pkix.DomainCertificateExtensions,
		Mapping: asn1pkix.Mapping{{OID: IDPEMASAURL, Schema: MASAURLSyntax}},
	}},
}
