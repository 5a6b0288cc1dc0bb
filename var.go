package asn1pkix

/*
var.go contains global variables and constants used throughout this package.
*/

/*
ASN.1 UNIVERSAL tag constants for the types a [Schema] may describe.
*/
const (
	invalidTag         = 0
	TagBoolean         = 1
	TagInteger         = 2
	TagBitString       = 3
	TagOctetString     = 4
	TagNull            = 5
	TagOID             = 6
	TagEnum            = 10
	TagUTF8String      = 12
	TagSequence        = 16
	TagSet             = 17
	TagNumericString   = 18
	TagPrintableString = 19
	TagT61String       = 20
	TagIA5String       = 22
	TagUTCTime         = 23
	TagGeneralizedTime = 24
	TagVisibleString   = 26
	TagUniversalString = 28
	TagBMPString       = 30
)

// maxLowTag is the highest tag number expressible in a single identifier
// octet; high-tag-number form is not supported by the codec.
const maxLowTag = 30

/*
ASN.1 class constants.
*/
const (
	invalidClass int = iota - 1
	ClassUniversal
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

/*
ClassNames facilitates access to string ASN.1 class names.
*/
var ClassNames = map[int]string{
	invalidClass:         "INVALID CLASS",
	ClassUniversal:       "UNIVERSAL",
	ClassApplication:     "APPLICATION",
	ClassContextSpecific: "CONTEXT SPECIFIC",
	ClassPrivate:         "PRIVATE",
}

/*
TagNames facilitates access to string ASN.1 tag names.
*/
var TagNames = map[int]string{
	invalidTag:         "INVALID TAG",       //  0
	TagBoolean:         "BOOLEAN",           //  1
	TagInteger:         "INTEGER",           //  2
	TagBitString:       "BIT STRING",        //  3
	TagOctetString:     "OCTET STRING",      //  4
	TagNull:            "NULL",              //  5
	TagOID:             "OBJECT IDENTIFIER", //  6
	TagEnum:            "ENUMERATED",        // 10
	TagUTF8String:      "UTF8 STRING",       // 12
	TagSequence:        "SEQUENCE",          // 16
	TagSet:             "SET",               // 17
	TagNumericString:   "NUMERIC STRING",    // 18
	TagPrintableString: "PRINTABLE STRING",  // 19
	TagT61String:       "T61 STRING",        // 20
	TagIA5String:       "IA5 STRING",        // 22
	TagUTCTime:         "UTC TIME",          // 23
	TagGeneralizedTime: "GENERALIZED TIME",  // 24
	TagVisibleString:   "VISIBLE STRING",    // 26
	TagUniversalString: "UNIVERSAL STRING",  // 28
	TagBMPString:       "BMP STRING",        // 30
}

// DefaultMaxDepth is the nesting limit applied by [Decode] and [Resolve]
// when no [WithMaxDepth] option is supplied.
const DefaultMaxDepth = 64
