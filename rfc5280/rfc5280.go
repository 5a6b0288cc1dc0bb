/*
Package rfc5280 declares the schemas of the Internet X.509 Public Key
Infrastructure certificate profile (RFC 5280), along with the naming
attributes it draws from X.520 and the PKIX1 algorithms of RFC 3279.

The package owns the registry domains used by certificates (extension
values, algorithm parameters, attribute values, other names and policy
qualifiers) and contributes the standard entries to each through its
[Module].
*/
package rfc5280

import "github.com/JesseCoretta/go-asn1pkix"

/*
DomainPolicyQualifiers maps a policyQualifierId to the syntax of its
qualifier.
*/
const DomainPolicyQualifiers asn1pkix.Domain = "policy-qualifiers"

/*
Upper bounds.
*/
const (
	ubName                   = 32768
	ubCommonName             = 64
	ubLocalityName           = 128
	ubStateName              = 128
	ubOrganizationName       = 64
	ubOrganizationalUnitName = 64
	ubTitle                  = 64
	ubSerialNumber           = 64
	ubPseudonym              = 128
	ubEmailAddress           = 255
	ubSurname                = 40
	ubGivenName              = 16
	ubInitials               = 5
	ubGenerationQualifier    = 3
	ubCountryName            = 2
	ubDisplayText            = 200
)

/*
DirectoryString returns the DirectoryString CHOICE, each alternative of
which is limited to between 1 and max characters.
*/
func DirectoryString(max int) *asn1pkix.Schema {
	size := asn1pkix.Size(1, max)
	return asn1pkix.ChoiceType("DirectoryString",
		asn1pkix.Alt("teletexString", asn1pkix.StringType(asn1pkix.KindTeletexString, size)),
		asn1pkix.Alt("printableString", asn1pkix.StringType(asn1pkix.KindPrintableString, size)),
		asn1pkix.Alt("universalString", asn1pkix.StringType(asn1pkix.KindUniversalString, size)),
		asn1pkix.Alt("utf8String", asn1pkix.StringType(asn1pkix.KindUTF8String, size)),
		asn1pkix.Alt("bmpString", asn1pkix.StringType(asn1pkix.KindBMPString, size)),
	)
}

// Version numbers.
var (
	V1 = asn1pkix.NewInteger(0)
	V2 = asn1pkix.NewInteger(1)
	V3 = asn1pkix.NewInteger(2)
)

var (
	AlgorithmIdentifier = asn1pkix.SequenceType("AlgorithmIdentifier",
		asn1pkix.Required("algorithm", asn1pkix.OIDType()),
		asn1pkix.Optional("parameters", asn1pkix.OpenType(asn1pkix.DomainAlgorithmParameters, "algorithm")),
	)

	AttributeTypeAndValue = asn1pkix.SequenceType("AttributeTypeAndValue",
		asn1pkix.Required("type", asn1pkix.OIDType()),
		asn1pkix.Required("value", asn1pkix.OpenType(asn1pkix.DomainAttributeTypes, "type")),
	)

	RelativeDistinguishedName = asn1pkix.SetOfType("RelativeDistinguishedName",
		AttributeTypeAndValue, asn1pkix.Size(1, asn1pkix.MAX))

	RDNSequence = asn1pkix.SequenceOfType("RDNSequence", RelativeDistinguishedName)

	Name = asn1pkix.ChoiceType("Name", asn1pkix.Alt("rdnSequence", RDNSequence))

	Attribute = asn1pkix.SequenceType("Attribute",
		asn1pkix.Required("type", asn1pkix.OIDType()),
		asn1pkix.Required("values", asn1pkix.SetOfType("AttributeValues",
			asn1pkix.OpenType(asn1pkix.DomainAttributeTypes, "type"), asn1pkix.Size(1, asn1pkix.MAX))),
	)

	Time = asn1pkix.ChoiceType("Time",
		asn1pkix.Alt("utcTime", asn1pkix.UTCTimeType()),
		asn1pkix.Alt("generalTime", asn1pkix.GeneralizedTimeType()),
	)

	Validity = asn1pkix.SequenceType("Validity",
		asn1pkix.Required("notBefore", Time),
		asn1pkix.Required("notAfter", Time),
	)

	SubjectPublicKeyInfo = asn1pkix.SequenceType("SubjectPublicKeyInfo",
		asn1pkix.Required("algorithm", AlgorithmIdentifier),
		asn1pkix.Required("subjectPublicKey", asn1pkix.BitStringType()),
	)

	Extension = asn1pkix.SequenceType("Extension",
		asn1pkix.Required("extnID", asn1pkix.OIDType()),
		asn1pkix.Defaulted("critical", asn1pkix.BooleanType(), asn1pkix.Boolean(false)),
		asn1pkix.Required("extnValue", asn1pkix.OpenOctetStringType(asn1pkix.DomainCertificateExtensions, "extnID")),
	)

	Extensions = asn1pkix.SequenceOfType("Extensions", Extension, asn1pkix.Size(1, asn1pkix.MAX))

	Version                 = asn1pkix.IntegerType().Named("Version")
	CertificateSerialNumber = asn1pkix.IntegerType().Named("CertificateSerialNumber")
	UniqueIdentifier        = asn1pkix.BitStringType().Named("UniqueIdentifier")

	TBSCertificate = asn1pkix.SequenceType("TBSCertificate",
		asn1pkix.Defaulted("version", Version.Explicit(0), V1),
		asn1pkix.Required("serialNumber", CertificateSerialNumber),
		asn1pkix.Required("signature", AlgorithmIdentifier),
		asn1pkix.Required("issuer", Name),
		asn1pkix.Required("validity", Validity),
		asn1pkix.Required("subject", Name),
		asn1pkix.Required("subjectPublicKeyInfo", SubjectPublicKeyInfo),
		asn1pkix.Optional("issuerUniqueID", UniqueIdentifier.Implicit(1)),
		asn1pkix.Optional("subjectUniqueID", UniqueIdentifier.Implicit(2)),
		asn1pkix.Optional("extensions", Extensions.Explicit(3)),
	)

	Certificate = asn1pkix.SequenceType("Certificate",
		asn1pkix.Required("tbsCertificate", TBSCertificate),
		asn1pkix.Required("signatureAlgorithm", AlgorithmIdentifier),
		asn1pkix.Required("signature", asn1pkix.BitStringType()),
	)
)

var (
	AnotherName = asn1pkix.SequenceType("AnotherName",
		asn1pkix.Required("type-id", asn1pkix.OIDType()),
		asn1pkix.Required("value", asn1pkix.OpenType(asn1pkix.DomainOtherNames, "type-id").Explicit(0)),
	)

	EDIPartyName = asn1pkix.SequenceType("EDIPartyName",
		asn1pkix.Optional("nameAssigner", DirectoryString(ubName).Implicit(0)),
		asn1pkix.Required("partyName", DirectoryString(ubName).Implicit(1)),
	)

	GeneralName = asn1pkix.ChoiceType("GeneralName",
		asn1pkix.Alt("otherName", AnotherName.Implicit(0)),
		asn1pkix.Alt("rfc822Name", asn1pkix.StringType(asn1pkix.KindIA5String).Implicit(1)),
		asn1pkix.Alt("dNSName", asn1pkix.StringType(asn1pkix.KindIA5String).Implicit(2)),
		asn1pkix.Alt("x400Address", asn1pkix.AnyType().Implicit(3)),
		asn1pkix.Alt("directoryName", Name.Implicit(4)),
		asn1pkix.Alt("ediPartyName", EDIPartyName.Implicit(5)),
		asn1pkix.Alt("uniformResourceIdentifier", asn1pkix.StringType(asn1pkix.KindIA5String).Implicit(6)),
		asn1pkix.Alt("iPAddress", asn1pkix.OctetStringType().Implicit(7)),
		asn1pkix.Alt("registeredID", asn1pkix.OIDType().Implicit(8)),
	)

	GeneralNames = asn1pkix.SequenceOfType("GeneralNames", GeneralName, asn1pkix.Size(1, asn1pkix.MAX))
)

/*
Module is the registry contribution of this package. It owns every
domain used within certificates.
*/
var Module = asn1pkix.Module{
	Name: "rfc5280",
	Owns: []asn1pkix.Domain{
		asn1pkix.DomainCertificateExtensions,
		asn1pkix.DomainAlgorithmParameters,
		asn1pkix.DomainAttributeTypes,
		asn1pkix.DomainOtherNames,
		DomainPolicyQualifiers,
	},
	Deltas: []asn1pkix.Delta{
		{Domain: asn1pkix.DomainCertificateExtensions, Mapping: CertificateExtensions},
		{Domain: asn1pkix.DomainAlgorithmParameters, Mapping: AlgorithmParameters},
		{Domain: asn1pkix.DomainAttributeTypes, Mapping: AttributeTypes},
		{Domain: DomainPolicyQualifiers, Mapping: PolicyQualifiers},
	},
}
