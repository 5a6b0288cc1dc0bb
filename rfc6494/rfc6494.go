/*
Package rfc6494 declares the extended key usage values of the Secure
Neighbor Discovery certificate profile (RFC 6494).
*/
package rfc6494

import (
	"github.com/JesseCoretta/go-asn1pkix"
	"github.com/JesseCoretta/go-asn1pkix/rfc5280"
)

var (
	IDKPSendRouter        = rfc5280.IDKP.Append(23)
	IDKPSendProxiedRouter = rfc5280.IDKP.Append(24)
	IDKPSendOwner         = rfc5280.IDKP.Append(25)
	IDKPSendProxiedOwner  = rfc5280.IDKP.Append(26)
)

/*
Module is the registry contribution of this package. It contributes
no entries.
*/
var Module = asn1pkix.Module{
	Name:     "rfc6494",
	Requires: []string{rfc5280.Module.Name},
}
