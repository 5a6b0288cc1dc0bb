/*
Package rfc5652 declares the Cryptographic Message Syntax (RFC 5652)
content framing, the SignedData content type and the signed attributes
defined alongside it.

The package owns [asn1pkix.DomainContentTypes], through which the
content of a [ContentInfo] is resolved.
*/
package rfc5652

import (
	"github.com/JesseCoretta/go-asn1pkix"
	"github.com/JesseCoretta/go-asn1pkix/rfc5280"
)

var (
	pkcs7 = asn1pkix.MustObjectIdentifier("1.2.840.113549.1.7")
	pkcs9 = asn1pkix.MustObjectIdentifier("1.2.840.113549.1.9")
)

// Content types.
var (
	IDCTContentInfo = asn1pkix.MustObjectIdentifier("1.2.840.113549.1.9.16.1.6")
	IDData          = pkcs7.Append(1)
	IDSignedData    = pkcs7.Append(2)
)

// Attributes.
var (
	IDContentType      = pkcs9.Append(3)
	IDMessageDigest    = pkcs9.Append(4)
	IDSigningTime      = pkcs9.Append(5)
	IDCountersignature = pkcs9.Append(6)
)

// CMS version numbers.
var (
	V0 = asn1pkix.NewInteger(0)
	V1 = asn1pkix.NewInteger(1)
	V2 = asn1pkix.NewInteger(2)
	V3 = asn1pkix.NewInteger(3)
	V4 = asn1pkix.NewInteger(4)
	V5 = asn1pkix.NewInteger(5)
)

var (
	ContentType = asn1pkix.OIDType().Named("ContentType")
	CMSVersion  = asn1pkix.IntegerType().Named("CMSVersion")

	ContentInfo = asn1pkix.SequenceType("ContentInfo",
		asn1pkix.Required("contentType", ContentType),
		asn1pkix.Required("content", asn1pkix.OpenType(asn1pkix.DomainContentTypes, "contentType").Explicit(0)),
	)

	// eContent holds raw octets for id-data, so it is not resolved.
	EncapsulatedContentInfo = asn1pkix.SequenceType("EncapsulatedContentInfo",
		asn1pkix.Required("eContentType", ContentType),
		asn1pkix.Optional("eContent", asn1pkix.OctetStringType().Explicit(0)),
	)

	DigestAlgorithmIdentifier    = rfc5280.AlgorithmIdentifier.Named("DigestAlgorithmIdentifier")
	SignatureAlgorithmIdentifier = rfc5280.AlgorithmIdentifier.Named("SignatureAlgorithmIdentifier")

	DigestAlgorithmIdentifiers = asn1pkix.SetOfType("DigestAlgorithmIdentifiers", DigestAlgorithmIdentifier)

	Attribute = asn1pkix.SequenceType("Attribute",
		asn1pkix.Required("attrType", asn1pkix.OIDType()),
		asn1pkix.Required("attrValues", asn1pkix.SetOfType("AttributeValues",
			asn1pkix.OpenType(asn1pkix.DomainAttributeTypes, "attrType"))),
	)

	SignedAttributes   = asn1pkix.SetOfType("SignedAttributes", Attribute, asn1pkix.Size(1, asn1pkix.MAX))
	UnsignedAttributes = asn1pkix.SetOfType("UnsignedAttributes", Attribute, asn1pkix.Size(1, asn1pkix.MAX))

	IssuerAndSerialNumber = asn1pkix.SequenceType("IssuerAndSerialNumber",
		asn1pkix.Required("issuer", rfc5280.Name),
		asn1pkix.Required("serialNumber", rfc5280.CertificateSerialNumber),
	)

	SignerIdentifier = asn1pkix.ChoiceType("SignerIdentifier",
		asn1pkix.Alt("issuerAndSerialNumber", IssuerAndSerialNumber),
		asn1pkix.Alt("subjectKeyIdentifier", rfc5280.SubjectKeyIdentifier.Implicit(0)),
	)

	SignerInfo = asn1pkix.SequenceType("SignerInfo",
		asn1pkix.Required("version", CMSVersion),
		asn1pkix.Required("sid", SignerIdentifier),
		asn1pkix.Required("digestAlgorithm", DigestAlgorithmIdentifier),
		asn1pkix.Optional("signedAttrs", SignedAttributes.Implicit(0)),
		asn1pkix.Required("signatureAlgorithm", SignatureAlgorithmIdentifier),
		asn1pkix.Required("signature", asn1pkix.OctetStringType().Named("SignatureValue")),
		asn1pkix.Optional("unsignedAttrs", UnsignedAttributes.Implicit(1)),
	)

	SignerInfos = asn1pkix.SetOfType("SignerInfos", SignerInfo)

	// Only the X.509 certificate alternative is decoded; attribute
	// certificates and other formats are kept as raw elements.
	CertificateChoices = asn1pkix.ChoiceType("CertificateChoices",
		asn1pkix.Alt("certificate", rfc5280.Certificate),
		asn1pkix.Alt("extendedCertificate", asn1pkix.AnyType().Implicit(0)),
		asn1pkix.Alt("v1AttrCert", asn1pkix.AnyType().Implicit(1)),
		asn1pkix.Alt("v2AttrCert", asn1pkix.AnyType().Implicit(2)),
		asn1pkix.Alt("other", asn1pkix.AnyType().Implicit(3)),
	)

	CertificateSet = asn1pkix.SetOfType("CertificateSet", CertificateChoices)

	RevocationInfoChoice = asn1pkix.ChoiceType("RevocationInfoChoice",
		asn1pkix.Alt("other", asn1pkix.AnyType().Implicit(1)),
		asn1pkix.Alt("crl", asn1pkix.AnyType().Named("CertificateList")),
	)

	RevocationInfoChoices = asn1pkix.SetOfType("RevocationInfoChoices", RevocationInfoChoice)

	SignedData = asn1pkix.SequenceType("SignedData",
		asn1pkix.Required("version", CMSVersion),
		asn1pkix.Required("digestAlgorithms", DigestAlgorithmIdentifiers),
		asn1pkix.Required("encapContentInfo", EncapsulatedContentInfo),
		asn1pkix.Optional("certificates", CertificateSet.Implicit(0)),
		asn1pkix.Optional("crls", RevocationInfoChoices.Implicit(1)),
		asn1pkix.Required("signerInfos", SignerInfos),
	)

	MessageDigest    = asn1pkix.OctetStringType().Named("MessageDigest")
	SigningTime      = rfc5280.Time.Named("SigningTime")
	Countersignature = SignerInfo.Named("Countersignature")
)

/*
ContentTypes maps each content type to the syntax of its content.
*/
var ContentTypes = asn1pkix.Mapping{
	{OID: IDData, Schema: asn1pkix.OctetStringType().Named("Data")},
	{OID: IDSignedData, Schema: SignedData},
}

/*
AttributeTypes maps the CMS attributes to the syntax of their values.
*/
var AttributeTypes = asn1pkix.Mapping{
	{OID: IDContentType, Schema: ContentType},
	{OID: IDMessageDigest, Schema: MessageDigest},
	{OID: IDSigningTime, Schema: SigningTime},
	{OID: IDCountersignature, Schema: Countersignature},
}

/*
Module is the registry contribution of this package.
*/
var Module = asn1pkix.Module{
	Name:     "rfc5652",
	Owns:     []asn1pkix.Domain{asn1pkix.DomainContentTypes},
	Requires: []string{rfc5280.Module.Name},
	Deltas: []asn1pkix.Delta{
		{Domain: asn1pkix.DomainContentTypes, Mapping: ContentTypes},
		{Domain: asn1pkix.DomainAttributeTypes, Mapping: AttributeTypes},
	},
}
