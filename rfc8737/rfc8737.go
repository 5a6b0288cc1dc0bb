/*
Package rfc8737 declares the ACME TLS-ALPN identifier extension of
RFC 8737.
*/
package rfc8737

import (
	"github.com/JesseCoretta/go-asn1pkix"
	"github.com/JesseCoretta/go-asn1pkix/rfc5280"
)

// IDPEACMEIdentifier identifies the acmeIdentifier extension.
var IDPEACMEIdentifier = rfc5280.IDPE.Append(31)

/*
Authorization is the SHA-256 digest of the key authorization, exactly
32 octets long.
*/
var Authorization = asn1pkix.OctetStringType(asn1pkix.FixedSize(32)).Named("Authorization")

/*
Module is the registry contribution of this package.
*/
var Module = asn1pkix.Module{
	Name:     "rfc8737",
	Requires: []string{rfc5280.Module.Name},
	Deltas: []asn1pkix.Delta{{
		Domain:  asn1pkix.DomainCertificateExtensions,
		Mapping: asn1pkix.Mapping{{OID: IDPEACMEIdentifier, Schema: Authorization}},
	}},
}
