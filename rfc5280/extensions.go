package rfc5280

import "github.com/JesseCoretta/go-asn1pkix"

var (
	KeyIdentifier = asn1pkix.OctetStringType().Named("KeyIdentifier")

	AuthorityKeyIdentifier = asn1pkix.SequenceType("AuthorityKeyIdentifier",
		asn1pkix.Optional("keyIdentifier", KeyIdentifier.Implicit(0)),
		asn1pkix.Optional("authorityCertIssuer", GeneralNames.Implicit(1)),
		asn1pkix.Optional("authorityCertSerialNumber", CertificateSerialNumber.Implicit(2)),
	)

	SubjectKeyIdentifier = KeyIdentifier.Named("SubjectKeyIdentifier")

	KeyUsage = asn1pkix.BitStringType().Named("KeyUsage")

	CertPolicyID = asn1pkix.OIDType().Named("CertPolicyId")

	PolicyQualifierInfo = asn1pkix.SequenceType("PolicyQualifierInfo",
		asn1pkix.Required("policyQualifierId", asn1pkix.OIDType()),
		asn1pkix.Required("qualifier", asn1pkix.OpenType(DomainPolicyQualifiers, "policyQualifierId")),
	)

	PolicyInformation = asn1pkix.SequenceType("PolicyInformation",
		asn1pkix.Required("policyIdentifier", CertPolicyID),
		asn1pkix.Optional("policyQualifiers", asn1pkix.SequenceOfType("PolicyQualifiers",
			PolicyQualifierInfo, asn1pkix.Size(1, asn1pkix.MAX))),
	)

	CertificatePolicies = asn1pkix.SequenceOfType("CertificatePolicies", PolicyInformation, asn1pkix.Size(1, asn1pkix.MAX))

	DisplayText = asn1pkix.ChoiceType("DisplayText",
		asn1pkix.Alt("ia5String", asn1pkix.StringType(asn1pkix.KindIA5String, asn1pkix.Size(1, ubDisplayText))),
		asn1pkix.Alt("visibleString", asn1pkix.StringType(asn1pkix.KindVisibleString, asn1pkix.Size(1, ubDisplayText))),
		asn1pkix.Alt("bmpString", asn1pkix.StringType(asn1pkix.KindBMPString, asn1pkix.Size(1, ubDisplayText))),
		asn1pkix.Alt("utf8String", asn1pkix.StringType(asn1pkix.KindUTF8String, asn1pkix.Size(1, ubDisplayText))),
	)

	NoticeReference = asn1pkix.SequenceType("NoticeReference",
		asn1pkix.Required("organization", DisplayText),
		asn1pkix.Required("noticeNumbers", asn1pkix.SequenceOfType("NoticeNumbers", asn1pkix.IntegerType())),
	)

	UserNotice = asn1pkix.SequenceType("UserNotice",
		asn1pkix.Optional("noticeRef", NoticeReference),
		asn1pkix.Optional("explicitText", DisplayText),
	)

	CPSuri = asn1pkix.StringType(asn1pkix.KindIA5String).Named("CPSuri")

	PolicyMappings = asn1pkix.SequenceOfType("PolicyMappings",
		asn1pkix.SequenceType("PolicyMapping",
			asn1pkix.Required("issuerDomainPolicy", CertPolicyID),
			asn1pkix.Required("subjectDomainPolicy", CertPolicyID),
		), asn1pkix.Size(1, asn1pkix.MAX))

	SubjectAltName = GeneralNames.Named("SubjectAltName")
	IssuerAltName  = GeneralNames.Named("IssuerAltName")

	SubjectDirectoryAttributes = asn1pkix.SequenceOfType("SubjectDirectoryAttributes",
		Attribute, asn1pkix.Size(1, asn1pkix.MAX))

	BasicConstraints = asn1pkix.SequenceType("BasicConstraints",
		asn1pkix.Defaulted("cA", asn1pkix.BooleanType(), asn1pkix.Boolean(false)),
		asn1pkix.Optional("pathLenConstraint", asn1pkix.IntegerType(asn1pkix.ValueMin(0))),
	)

	BaseDistance = asn1pkix.IntegerType(asn1pkix.ValueMin(0)).Named("BaseDistance")

	GeneralSubtree = asn1pkix.SequenceType("GeneralSubtree",
		asn1pkix.Required("base", GeneralName),
		asn1pkix.Defaulted("minimum", BaseDistance.Implicit(0), asn1pkix.NewInteger(0)),
		asn1pkix.Optional("maximum", BaseDistance.Implicit(1)),
	)

	GeneralSubtrees = asn1pkix.SequenceOfType("GeneralSubtrees", GeneralSubtree, asn1pkix.Size(1, asn1pkix.MAX))

	NameConstraints = asn1pkix.SequenceType("NameConstraints",
		asn1pkix.Optional("permittedSubtrees", GeneralSubtrees.Implicit(0)),
		asn1pkix.Optional("excludedSubtrees", GeneralSubtrees.Implicit(1)),
	)

	SkipCerts = asn1pkix.IntegerType(asn1pkix.ValueMin(0)).Named("SkipCerts")

	PolicyConstraints = asn1pkix.SequenceType("PolicyConstraints",
		asn1pkix.Optional("requireExplicitPolicy", SkipCerts.Implicit(0)),
		asn1pkix.Optional("inhibitPolicyMapping", SkipCerts.Implicit(1)),
	)

	KeyPurposeID = asn1pkix.OIDType().Named("KeyPurposeId")

	ExtKeyUsageSyntax = asn1pkix.SequenceOfType("ExtKeyUsageSyntax", KeyPurposeID, asn1pkix.Size(1, asn1pkix.MAX))

	ReasonFlags = asn1pkix.BitStringType().Named("ReasonFlags")

	DistributionPointName = asn1pkix.ChoiceType("DistributionPointName",
		asn1pkix.Alt("fullName", GeneralNames.Implicit(0)),
		asn1pkix.Alt("nameRelativeToCRLIssuer", RelativeDistinguishedName.Implicit(1)),
	)

	DistributionPoint = asn1pkix.SequenceType("DistributionPoint",
		asn1pkix.Optional("distributionPoint", DistributionPointName.Implicit(0)),
		asn1pkix.Optional("reasons", ReasonFlags.Implicit(1)),
		asn1pkix.Optional("cRLIssuer", GeneralNames.Implicit(2)),
	)

	CRLDistributionPoints = asn1pkix.SequenceOfType("CRLDistributionPoints", DistributionPoint, asn1pkix.Size(1, asn1pkix.MAX))

	FreshestCRL = CRLDistributionPoints.Named("FreshestCRL")

	InhibitAnyPolicy = SkipCerts.Named("InhibitAnyPolicy")

	AccessDescription = asn1pkix.SequenceType("AccessDescription",
		asn1pkix.Required("accessMethod", asn1pkix.OIDType()),
		asn1pkix.Required("accessLocation", GeneralName),
	)

	AuthorityInfoAccessSyntax = asn1pkix.SequenceOfType("AuthorityInfoAccessSyntax",
		AccessDescription, asn1pkix.Size(1, asn1pkix.MAX))

	SubjectInfoAccessSyntax = AuthorityInfoAccessSyntax.Named("SubjectInfoAccessSyntax")
)

/*
CertificateExtensions maps each standard extension to the syntax of
its extnValue.
*/
var CertificateExtensions = asn1pkix.Mapping{
	{OID: IDCEAuthorityKeyIdentifier, Schema: AuthorityKeyIdentifier},
	{OID: IDCESubjectKeyIdentifier, Schema: SubjectKeyIdentifier},
	{OID: IDCEKeyUsage, Schema: KeyUsage},
	{OID: IDCECertificatePolicies, Schema: CertificatePolicies},
	{OID: IDCEPolicyMappings, Schema: PolicyMappings},
	{OID: IDCESubjectAltName, Schema: SubjectAltName},
	{OID: IDCEIssuerAltName, Schema: IssuerAltName},
	{OID: IDCESubjectDirectoryAttributes, Schema: SubjectDirectoryAttributes},
	{OID: IDCEBasicConstraints, Schema: BasicConstraints},
	{OID: IDCENameConstraints, Schema: NameConstraints},
	{OID: IDCEPolicyConstraints, Schema: PolicyConstraints},
	{OID: IDCEExtKeyUsage, Schema: ExtKeyUsageSyntax},
	{OID: IDCECRLDistributionPoints, Schema: CRLDistributionPoints},
	{OID: IDCEInhibitAnyPolicy, Schema: InhibitAnyPolicy},
	{OID: IDCEFreshestCRL, Schema: FreshestCRL},
	{OID: IDPEAuthorityInfoAccess, Schema: AuthorityInfoAccessSyntax},
	{OID: IDPESubjectInfoAccess, Schema: SubjectInfoAccessSyntax},
}

/*
PolicyQualifiers maps each policy qualifier to the syntax of its
qualifier field.
*/
var PolicyQualifiers = asn1pkix.Mapping{
	{OID: IDQTCPS, Schema: CPSuri},
	{OID: IDQTUnotice, Schema: UserNotice},
}
