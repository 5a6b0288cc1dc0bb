package rfc5280

import "github.com/JesseCoretta/go-asn1pkix"

var oid = asn1pkix.MustObjectIdentifier

// Arc prefixes.
var (
	IDPKIX = oid("1.3.6.1.5.5.7")
	IDPE   = IDPKIX.Append(1)
	IDQT   = IDPKIX.Append(2)
	IDKP   = IDPKIX.Append(3)
	IDAD   = IDPKIX.Append(48)
	IDCE   = oid("2.5.29")
	IDAT   = oid("2.5.4")
)

// Certificate extensions.
var (
	IDCESubjectDirectoryAttributes = IDCE.Append(9)
	IDCESubjectKeyIdentifier       = IDCE.Append(14)
	IDCEKeyUsage                   = IDCE.Append(15)
	IDCESubjectAltName             = IDCE.Append(17)
	IDCEIssuerAltName              = IDCE.Append(18)
	IDCEBasicConstraints           = IDCE.Append(19)
	IDCENameConstraints            = IDCE.Append(30)
	IDCECRLDistributionPoints      = IDCE.Append(31)
	IDCECertificatePolicies        = IDCE.Append(32)
	IDCEPolicyMappings             = IDCE.Append(33)
	IDCEAuthorityKeyIdentifier     = IDCE.Append(35)
	IDCEPolicyConstraints          = IDCE.Append(36)
	IDCEExtKeyUsage                = IDCE.Append(37)
	IDCEFreshestCRL                = IDCE.Append(46)
	IDCEInhibitAnyPolicy           = IDCE.Append(54)

	IDPEAuthorityInfoAccess = IDPE.Append(1)
	IDPESubjectInfoAccess   = IDPE.Append(11)
)

// Policy qualifiers, access methods and key purposes.
var (
	IDQTCPS     = IDQT.Append(1)
	IDQTUnotice = IDQT.Append(2)

	IDADOCSP      = IDAD.Append(1)
	IDADCAIssuers = IDAD.Append(2)

	IDKPServerAuth   = IDKP.Append(1)
	IDKPClientAuth   = IDKP.Append(2)
	IDKPCodeSigning  = IDKP.Append(3)
	IDKPEmailProtect = IDKP.Append(4)
	IDKPTimeStamping = IDKP.Append(8)
	IDKPOCSPSigning  = IDKP.Append(9)

	AnyPolicy = IDCE.Append(32, 0)
)

// Naming attributes.
var (
	IDATName                   = IDAT.Append(41)
	IDATSurname                = IDAT.Append(4)
	IDATGivenName              = IDAT.Append(42)
	IDATInitials               = IDAT.Append(43)
	IDATGenerationQualifier    = IDAT.Append(44)
	IDATCommonName             = IDAT.Append(3)
	IDATLocalityName           = IDAT.Append(7)
	IDATStateOrProvinceName    = IDAT.Append(8)
	IDATOrganizationName       = IDAT.Append(10)
	IDATOrganizationalUnitName = IDAT.Append(11)
	IDATTitle                  = IDAT.Append(12)
	IDATDNQualifier            = IDAT.Append(46)
	IDATCountryName            = IDAT.Append(6)
	IDATSerialNumber           = IDAT.Append(5)
	IDATPseudonym              = IDAT.Append(65)
	IDDomainComponent          = oid("0.9.2342.19200300.100.1.25")
	IDEmailAddress             = oid("1.2.840.113549.1.9.1")
)

// PKIX1 algorithms.
var (
	PKCS1                 = oid("1.2.840.113549.1.1")
	RSAEncryption         = PKCS1.Append(1)
	MD2WithRSAEncryption  = PKCS1.Append(2)
	MD5WithRSAEncryption  = PKCS1.Append(4)
	SHA1WithRSAEncryption = PKCS1.Append(5)
	IDSHA1                = oid("1.3.14.3.2.26")
	IDDSA                 = oid("1.2.840.10040.4.1")
	IDDSAWithSHA1         = oid("1.2.840.10040.4.3")
	IDECPublicKey         = oid("1.2.840.10045.2.1")
	ECDSAWithSHA256       = oid("1.2.840.10045.4.3.2")
	ECDSAWithSHA384       = oid("1.2.840.10045.4.3.3")
	SECP256R1             = oid("1.2.840.10045.3.1.7")
	SECP384R1             = oid("1.3.132.0.34")
)
