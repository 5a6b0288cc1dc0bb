/*
Package rfc3874 declares the SHA-224 one-way hash function identifier
of RFC 3874. The identifier, and the syntax of its parameters, belong
to package rfc4055; this package only names them.
*/
package rfc3874

import (
	"github.com/JesseCoretta/go-asn1pkix"
	"github.com/JesseCoretta/go-asn1pkix/rfc4055"
)

// IDSHA224 identifies the SHA-224 one-way hash function.
var IDSHA224 = rfc4055.IDSHA224

/*
Module is the registry contribution of this package. It contributes
no entries.
*/
var Module = asn1pkix.Module{
	Name:     "rfc3874",
	Requires: []string{rfc4055.Module.Name},
}
