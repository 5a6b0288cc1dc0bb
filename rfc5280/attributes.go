package rfc5280

import "github.com/JesseCoretta/go-asn1pkix"

var (
	X520Name                   = DirectoryString(ubName).Named("X520name")
	X520CommonName             = DirectoryString(ubCommonName).Named("X520CommonName")
	X520LocalityName           = DirectoryString(ubLocalityName).Named("X520LocalityName")
	X520StateOrProvinceName    = DirectoryString(ubStateName).Named("X520StateOrProvinceName")
	X520OrganizationName       = DirectoryString(ubOrganizationName).Named("X520OrganizationName")
	X520OrganizationalUnitName = DirectoryString(ubOrganizationalUnitName).Named("X520OrganizationalUnitName")
	X520Title                  = DirectoryString(ubTitle).Named("X520Title")
	X520Pseudonym              = DirectoryString(ubPseudonym).Named("X520Pseudonym")
	X520Surname                = DirectoryString(ubSurname).Named("X520Surname")
	X520GivenName              = DirectoryString(ubGivenName).Named("X520GivenName")
	X520Initials               = DirectoryString(ubInitials).Named("X520Initials")
	X520GenerationQualifier    = DirectoryString(ubGenerationQualifier).Named("X520GenerationQualifier")

	X520DNQualifier = asn1pkix.StringType(asn1pkix.KindPrintableString).Named("X520dnQualifier")

	X520CountryName = asn1pkix.StringType(asn1pkix.KindPrintableString,
		asn1pkix.FixedSize(ubCountryName)).Named("X520countryName")

	X520SerialNumber = asn1pkix.StringType(asn1pkix.KindPrintableString,
		asn1pkix.Size(1, ubSerialNumber)).Named("X520SerialNumber")

	DomainComponent = asn1pkix.StringType(asn1pkix.KindIA5String).Named("DomainComponent")

	EmailAddress = asn1pkix.StringType(asn1pkix.KindIA5String,
		asn1pkix.Size(1, ubEmailAddress)).Named("EmailAddress")
)

/*
AttributeTypes maps each naming attribute to the syntax of its values.
*/
var AttributeTypes = asn1pkix.Mapping{
	{OID: IDATName, Schema: X520Name},
	{OID: IDATSurname, Schema: X520Surname},
	{OID: IDATGivenName, Schema: X520GivenName},
	{OID: IDATInitials, Schema: X520Initials},
	{OID: IDATGenerationQualifier, Schema: X520GenerationQualifier},
	{OID: IDATCommonName, Schema: X520CommonName},
	{OID: IDATLocalityName, Schema: X520LocalityName},
	{OID: IDATStateOrProvinceName, Schema: X520StateOrProvinceName},
	{OID: IDATOrganizationName, Schema: X520OrganizationName},
	{OID: IDATOrganizationalUnitName, Schema: X520OrganizationalUnitName},
	{OID: IDATTitle, Schema: X520Title},
	{OID: IDATDNQualifier, Schema: X520DNQualifier},
	{OID: IDATCountryName, Schema: X520CountryName},
	{OID: IDATSerialNumber, Schema: X520SerialNumber},
	{OID: IDATPseudonym, Schema: X520Pseudonym},
	{OID: IDDomainComponent, Schema: DomainComponent},
	{OID: IDEmailAddress, Schema: EmailAddress},
}
