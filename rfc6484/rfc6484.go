/*
Package rfc6484 declares the certificate policy of the Resource PKI
(RFC 6484).
*/
package rfc6484

import "github.com/JesseCoretta/go-asn1pkix"

// IDCPIPAddrASNumber identifies the RPKI certificate policy.
var IDCPIPAddrASNumber = asn1pkix.MustObjectIdentifier("1.3.6.1.5.5.7.14.2")

/*
Module is the registry contribution of this package. It contributes
no entries.
*/
var Module = asn1pkix.Module{Name: "rfc6484"}
